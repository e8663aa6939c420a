package coord

import "sync"

// Tables bundles the six precomputed move-transition tables and the four
// pruning tables, plus the
// piece-level move effects and inverses they're built from. A Tables value
// is immutable once built and safe for concurrent read-only use by any
// number of solves.
type Tables struct {
	effects [NumMoves]moveEffect
	inv     [NumMoves]int

	CoMove    [][NumMoves]uint16      // [COSize][18]
	EoMove    [][NumMoves]uint16      // [EOSize][18]
	SliceMove [][NumMoves]uint16      // [SliceSize][18]
	CpMove    [][Phase2MoveCount]uint16 // [CPSize][10]
	EpMove    [][Phase2MoveCount]uint16 // [EPSize][10]
	SpMove    [][Phase2MoveCount]uint8  // [SPSize][10]

	PruneCoSlice []uint8 // [COSize*SliceSize]
	PruneEoSlice []uint8 // [EOSize*SliceSize]
	PruneCpSp    []uint8 // [CPSize*SPSize]
	PruneEpSp    []uint8 // [EPSize*SPSize]
}

// Inverse returns the inverse of absolute move m.
func (t *Tables) Inverse(m int) int { return t.inv[m] }

// Apply advances cc by one absolute move (0..17) using the precomputed
// piece-level effect table.
func (t *Tables) Apply(cc CubieCube, m int) CubieCube {
	return apply(cc, t.effects[m])
}

var (
	once   sync.Once
	tables *Tables
)

// Get returns the process-wide Tables singleton, building it on first call.
// Every subsequent call across the process sees the same immutable value;
// a sync.Once guard ensures construction happens exactly once regardless of
// how many callers race the first build.
func Get() *Tables {
	once.Do(func() {
		tables = build()
	})
	return tables
}

func build() *Tables {
	t := &Tables{
		effects: buildMoveEffects(),
		inv:     inverseMoves(),
	}

	t.buildPhase1MoveTables()
	t.buildPhase2MoveTables()
	t.buildPruningTables()
	return t
}

func (t *Tables) buildPhase1MoveTables() {
	solved := CubieCube{}
	for i := range solved.CP {
		solved.CP[i] = uint8(i)
	}
	for i := range solved.EP {
		solved.EP[i] = uint8(i)
	}

	t.CoMove = make([][NumMoves]uint16, COSize)
	for co := 0; co < COSize; co++ {
		cc := solved
		cc.CO = cornerOriFromCoord(co)
		for m := 0; m < NumMoves; m++ {
			next := t.Apply(cc, m)
			t.CoMove[co][m] = uint16(cornerOriCoord(next.CO))
		}
	}

	t.EoMove = make([][NumMoves]uint16, EOSize)
	for eo := 0; eo < EOSize; eo++ {
		cc := solved
		cc.EO = edgeOriFromCoord(eo)
		for m := 0; m < NumMoves; m++ {
			next := t.Apply(cc, m)
			t.EoMove[eo][m] = uint16(edgeOriCoord(next.EO))
		}
	}

	t.SliceMove = make([][NumMoves]uint16, SliceSize)
	for sl := 0; sl < SliceSize; sl++ {
		cc := solved
		cc.EP = sliceFromCoord(sl)
		for m := 0; m < NumMoves; m++ {
			next := t.Apply(cc, m)
			t.SliceMove[sl][m] = uint16(sliceCoord(next.EP))
		}
	}
}

func (t *Tables) buildPhase2MoveTables() {
	solved := CubieCube{}
	for i := range solved.CP {
		solved.CP[i] = uint8(i)
	}
	for i := range solved.EP {
		solved.EP[i] = uint8(i)
	}

	t.CpMove = make([][Phase2MoveCount]uint16, CPSize)
	for cp := 0; cp < CPSize; cp++ {
		cc := solved
		cc.CP = perm8FromCoord(cp)
		for mi, m := range Phase2Moves {
			next := t.Apply(cc, m)
			t.CpMove[cp][mi] = uint16(perm8Coord(next.CP))
		}
	}

	t.EpMove = make([][Phase2MoveCount]uint16, EPSize)
	for ep := 0; ep < EPSize; ep++ {
		cc := solved
		perm := perm8FromCoord(ep)
		copy(cc.EP[:8], perm[:])
		for i := 8; i < 12; i++ {
			cc.EP[i] = uint8(i)
		}
		for mi, m := range Phase2Moves {
			next := t.Apply(cc, m)
			var p [8]uint8
			copy(p[:], next.EP[:8])
			t.EpMove[ep][mi] = uint16(perm8Coord(p))
		}
	}

	t.SpMove = make([][Phase2MoveCount]uint8, SPSize)
	for sp := 0; sp < SPSize; sp++ {
		cc := solved
		for i := 0; i < 8; i++ {
			cc.EP[i] = uint8(i)
		}
		p4 := perm4FromCoord(sp)
		for i := 0; i < 4; i++ {
			cc.EP[8+i] = 8 + p4[i]
		}
		for mi, m := range Phase2Moves {
			next := t.Apply(cc, m)
			var q [4]uint8
			for i := 0; i < 4; i++ {
				q[i] = next.EP[8+i] - 8
			}
			t.SpMove[sp][mi] = uint8(perm4Coord(q))
		}
	}
}
