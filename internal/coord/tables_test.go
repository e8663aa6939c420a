package coord

import "testing"

func TestSolvedPruningIsZero(t *testing.T) {
	tb := Get()
	if tb.PruneCoSlice[0] != 0 {
		t.Fatalf("PruneCoSlice[0] = %d, want 0", tb.PruneCoSlice[0])
	}
	if tb.PruneEoSlice[0] != 0 {
		t.Fatalf("PruneEoSlice[0] = %d, want 0", tb.PruneEoSlice[0])
	}
	if tb.PruneCpSp[0] != 0 {
		t.Fatalf("PruneCpSp[0] = %d, want 0", tb.PruneCpSp[0])
	}
	if tb.PruneEpSp[0] != 0 {
		t.Fatalf("PruneEpSp[0] = %d, want 0", tb.PruneEpSp[0])
	}
}

func TestMoveTablesFullyPopulated(t *testing.T) {
	tb := Get()
	for co, row := range tb.CoMove {
		for m, v := range row {
			if int(v) >= COSize {
				t.Fatalf("CoMove[%d][%d] = %d out of range", co, m, v)
			}
		}
	}
	for sp, row := range tb.SpMove {
		for m, v := range row {
			if int(v) >= SPSize {
				t.Fatalf("SpMove[%d][%d] = %d out of range", sp, m, v)
			}
		}
	}
}

func TestMoveTableInverseReturnsHome(t *testing.T) {
	tb := Get()
	for co := 0; co < COSize; co += 37 {
		for m := 0; m < NumMoves; m++ {
			next := tb.CoMove[co][m]
			inv := tb.Inverse(m)
			if back := tb.CoMove[next][inv]; int(back) != co {
				t.Fatalf("co=%d move=%d: applying inverse %d landed on %d, want %d", co, m, inv, back, co)
			}
		}
	}
}

func TestGetIsSingleton(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Fatal("Get() returned distinct Tables instances")
	}
}
