package coord

import "testing"

func TestCornerOrientationRoundTrip(t *testing.T) {
	for coord := 0; coord < COSize; coord++ {
		co := cornerOriFromCoord(coord)
		sum := 0
		for _, v := range co {
			sum += int(v)
		}
		if sum%3 != 0 {
			t.Fatalf("coord %d: orientation sum %d not divisible by 3", coord, sum)
		}
		if got := cornerOriCoord(co); got != coord {
			t.Fatalf("round trip mismatch: coord=%d decoded=%v re-encoded=%d", coord, co, got)
		}
	}
}

func TestEdgeOrientationRoundTrip(t *testing.T) {
	for coord := 0; coord < EOSize; coord++ {
		eo := edgeOriFromCoord(coord)
		sum := 0
		for _, v := range eo {
			sum += int(v)
		}
		if sum%2 != 0 {
			t.Fatalf("coord %d: orientation parity %d not even", coord, sum)
		}
		if got := edgeOriCoord(eo); got != coord {
			t.Fatalf("round trip mismatch: coord=%d decoded=%v re-encoded=%d", coord, eo, got)
		}
	}
}

func TestSliceCoordRoundTrip(t *testing.T) {
	for coord := 0; coord < SliceSize; coord++ {
		ep := sliceFromCoord(coord)
		if got := sliceCoord(ep); got != coord {
			t.Fatalf("round trip mismatch: coord=%d decoded=%v re-encoded=%d", coord, ep, got)
		}
	}
}

func TestSliceCoordSolvedIsZero(t *testing.T) {
	var ep [12]uint8
	for i := range ep {
		ep[i] = uint8(i)
	}
	if got := sliceCoord(ep); got != 0 {
		t.Fatalf("solved slice coordinate = %d, want 0", got)
	}
}

func TestPerm8RoundTrip(t *testing.T) {
	for coord := 0; coord < fact8[8]; coord++ {
		p := perm8FromCoord(coord)
		seen := map[uint8]bool{}
		for _, v := range p {
			if seen[v] {
				t.Fatalf("coord %d: decoded permutation %v has duplicate", coord, p)
			}
			seen[v] = true
		}
		if got := perm8Coord(p); got != coord {
			t.Fatalf("round trip mismatch: coord=%d decoded=%v re-encoded=%d", coord, p, got)
		}
	}
}

func TestPerm4RoundTrip(t *testing.T) {
	for coord := 0; coord < fact8[4]; coord++ {
		p := perm4FromCoord(coord)
		seen := map[uint8]bool{}
		for _, v := range p {
			if seen[v] {
				t.Fatalf("coord %d: decoded permutation %v has duplicate", coord, p)
			}
			seen[v] = true
		}
		if got := perm4Coord(p); got != coord {
			t.Fatalf("round trip mismatch: coord=%d decoded=%v re-encoded=%d", coord, p, got)
		}
	}
}
