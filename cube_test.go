package cube

import "testing"

func TestNewIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Fatal("New() cube is not solved")
	}
	if !c.IsSolvable() {
		t.Fatal("New() cube is not solvable")
	}
}

func TestCenterFaceletsNeverMove(t *testing.T) {
	c := New()
	var centers [6]Color
	for f := Face(0); f < numFaces; f++ {
		centers[f] = c.Facelets[idx(f, 4)]
	}

	for m := MoveU; m < NumMoves; m++ {
		c := New()
		c.Apply(m)
		for f := Face(0); f < numFaces; f++ {
			if got := c.Facelets[idx(f, 4)]; got != centers[f] {
				t.Fatalf("move %s: center of face %s changed from %s to %s", m, f, centers[f], got)
			}
		}
	}
}

func TestMoveInverseReturnsSolved(t *testing.T) {
	for m := MoveU; m < NumMoves; m++ {
		c := New()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.IsSolved() {
			t.Fatalf("move %s followed by its inverse %s did not return to solved", m, m.Inverse())
		}
	}
}

func TestMovePeriod(t *testing.T) {
	// Every quarter turn has period 4, every half turn period 2.
	cases := []struct {
		m      Move
		period int
	}{
		{MoveU, 4}, {MoveU2, 2},
		{MoveD, 4}, {MoveD2, 2},
		{MoveL, 4}, {MoveL2, 2},
		{MoveR, 4}, {MoveR2, 2},
		{MoveF, 4}, {MoveF2, 2},
		{MoveB, 4}, {MoveB2, 2},
	}
	for _, tc := range cases {
		c := New()
		for i := 0; i < tc.period; i++ {
			c.Apply(tc.m)
		}
		if !c.IsSolved() {
			t.Fatalf("move %s applied %d times did not return to solved", tc.m, tc.period)
		}
	}
}

func TestColorCountInvariant(t *testing.T) {
	c := New()
	c.Scramble(50)

	var counts [6]int
	for _, col := range c.Facelets {
		counts[col]++
	}
	for col, n := range counts {
		if n != 9 {
			t.Fatalf("color %s appears %d times, want 9", Color(col), n)
		}
	}
}

func TestCubieInvariantsAfterScramble(t *testing.T) {
	c := New()
	c.Scramble(50)
	if !c.IsSolvable() {
		t.Fatal("cube produced by Scramble is not solvable")
	}

	var seenCorner [8]bool
	for i := 0; i < 8; i++ {
		cp := c.CornerPermutation(i)
		if cp < 0 || cp >= 8 || seenCorner[cp] {
			t.Fatalf("corner position %d decoded to invalid/duplicate cubie %d", i, cp)
		}
		seenCorner[cp] = true
		if o := c.CornerOrientation(i); o < 0 || o > 2 {
			t.Fatalf("corner position %d has out-of-range orientation %d", i, o)
		}
	}

	var seenEdge [12]bool
	for i := 0; i < 12; i++ {
		ep := c.EdgePermutation(i)
		if ep < 0 || ep >= 12 || seenEdge[ep] {
			t.Fatalf("edge position %d decoded to invalid/duplicate cubie %d", i, ep)
		}
		seenEdge[ep] = true
		if o := c.EdgeOrientation(i); o != 0 && o != 1 {
			t.Fatalf("edge position %d has out-of-range orientation %d", i, o)
		}
	}
}

func TestCoordinatesZeroOnSolved(t *testing.T) {
	c := New()
	if v := c.COCoord(); v != 0 {
		t.Errorf("COCoord() = %d, want 0", v)
	}
	if v := c.EOCoord(); v != 0 {
		t.Errorf("EOCoord() = %d, want 0", v)
	}
	if v := c.SliceCoord(); v != 0 {
		t.Errorf("SliceCoord() = %d, want 0", v)
	}
	if v := c.CPCoord(); v != 0 {
		t.Errorf("CPCoord() = %d, want 0", v)
	}
	if v := c.EPCoord(); v != 0 {
		t.Errorf("EPCoord() = %d, want 0", v)
	}
	if v := c.SPCoord(); v != 0 {
		t.Errorf("SPCoord() = %d, want 0", v)
	}
}

func TestCoordinatesWithinRange(t *testing.T) {
	c := New()
	c.Scramble(50)

	if v := c.COCoord(); v < 0 || v >= 2187 {
		t.Errorf("COCoord() = %d, out of range", v)
	}
	if v := c.EOCoord(); v < 0 || v >= 2048 {
		t.Errorf("EOCoord() = %d, out of range", v)
	}
	if v := c.SliceCoord(); v < 0 || v >= 495 {
		t.Errorf("SliceCoord() = %d, out of range", v)
	}
	if v := c.CPCoord(); v < 0 || v >= 40320 {
		t.Errorf("CPCoord() = %d, out of range", v)
	}
	if v := c.EPCoord(); v < 0 || v >= 40320 {
		t.Errorf("EPCoord() = %d, out of range", v)
	}
	if v := c.SPCoord(); v < 0 || v >= 24 {
		t.Errorf("SPCoord() = %d, out of range", v)
	}
}

func TestTwoQuarterTurnsMatchHalfTurn(t *testing.T) {
	// Two clockwise quarter turns of any single face must produce the same
	// state as the dedicated half-turn move.
	pairs := []struct{ quarter, half Move }{
		{MoveU, MoveU2}, {MoveD, MoveD2}, {MoveL, MoveL2},
		{MoveR, MoveR2}, {MoveF, MoveF2}, {MoveB, MoveB2},
	}
	for _, p := range pairs {
		viaDouble := New()
		viaDouble.Apply(p.quarter)
		viaDouble.Apply(p.quarter)

		viaHalf := New()
		viaHalf.Apply(p.half)

		if viaDouble.Facelets != viaHalf.Facelets {
			t.Fatalf("two %s turns did not match one %s", p.quarter, p.half)
		}
	}
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	seq := "R U R' U' F2 L2 D B2 U2 R2"
	moves := ParseSequence(seq)
	if len(moves) != 10 {
		t.Fatalf("ParseSequence(%q) returned %d moves, want 10", seq, len(moves))
	}
	if got := FormatMoves(moves); got != seq {
		t.Fatalf("FormatMoves(ParseSequence(%q)) = %q, want %q", seq, got, seq)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	if _, err := ParseMove("X"); err != ErrInvalidNotation {
		t.Fatalf("ParseMove(\"X\") error = %v, want ErrInvalidNotation", err)
	}
	if _, err := ParseMove(""); err != ErrInvalidNotation {
		t.Fatalf("ParseMove(\"\") error = %v, want ErrInvalidNotation", err)
	}
}

func TestScrambleIsSolvable(t *testing.T) {
	c := New()
	for i := 0; i < 20; i++ {
		moves := c.Scramble(30)
		if len(moves) != 30 {
			t.Fatalf("Scramble(30) returned %d moves", len(moves))
		}
		if !c.IsSolvable() {
			t.Fatalf("scramble %s produced an unsolvable cube", FormatMoves(moves))
		}
	}
}
