package notation

import (
	"testing"

	"github.com/arjwilde/cubesolve"
)

func TestParseSequenceRoundTrip(t *testing.T) {
	in := "R U R' U' F2 L2 D B2 U2 R2"
	moves, err := ParseSequence(in)
	if err != nil {
		t.Fatalf("ParseSequence(%q) error: %v", in, err)
	}
	if got := Format(moves); got != in {
		t.Fatalf("Format(ParseSequence(%q)) = %q, want %q", in, got, in)
	}
}

func TestParseSequenceRejectsBadToken(t *testing.T) {
	if _, err := ParseSequence("R U X"); err == nil {
		t.Fatal("ParseSequence with an invalid token returned nil error")
	}
}

func TestParseSingleMove(t *testing.T) {
	m, err := Parse("R2")
	if err != nil {
		t.Fatalf("Parse(\"R2\") error: %v", err)
	}
	if m != cube.MoveR2 {
		t.Fatalf("Parse(\"R2\") = %v, want MoveR2", m)
	}
	if got := Format(nil); got != "" {
		t.Fatalf("Format(nil) = %q, want empty", got)
	}
}
