// Package coord implements the coordinate codec, the six move-transition
// tables, and the four BFS pruning tables the two-phase search engine
// consumes. It operates on a lightweight piece-level CubieCube rather than
// the facelet model, mirroring the way the public cube.Cube decodes
// permutation/orientation but working on raw arrays so table construction
// never has to walk facelets.
package coord

import "github.com/arjwilde/cubesolve"

// CubieCube is the piece-level state: cp[i]/ep[i] is the identity of the
// cubie occupying corner/edge position i; co[i]/eo[i] is that position's
// orientation.
type CubieCube struct {
	CP [8]uint8
	CO [8]uint8
	EP [12]uint8
	EO [12]uint8
}

// FromCube extracts a CubieCube snapshot from a facelet cube.Cube.
func FromCube(c *cube.Cube) CubieCube {
	var cc CubieCube
	for i := 0; i < 8; i++ {
		cc.CP[i] = uint8(c.CornerPermutation(i))
		cc.CO[i] = uint8(c.CornerOrientation(i))
	}
	for i := 0; i < 12; i++ {
		cc.EP[i] = uint8(c.EdgePermutation(i))
		cc.EO[i] = uint8(c.EdgeOrientation(i))
	}
	return cc
}

// NumMoves is the full 18-move set size.
const NumMoves = int(cube.NumMoves)

// Phase2MoveCount is the size of the phase-2 subgroup generator.
const Phase2MoveCount = 10

// Phase2Moves maps a phase-2 move index (0..9) to its absolute move index
// (0..17): {U,U',U2, D,D',D2, L2, R2, F2, B2}.
var Phase2Moves = [Phase2MoveCount]int{0, 1, 2, 3, 4, 5, 8, 11, 14, 17}

// moveEffect records how one absolute move permutes and reorients pieces:
// out.cp[i] = in.cp[cPos[i]], out.co[i] = (in.co[cPos[i]] + cOri[i]) mod 3,
// and analogously for edges with XOR orientation.
type moveEffect struct {
	CPos [8]uint8
	COri [8]uint8
	EPos [12]uint8
	EOri [12]uint8
}

// buildMoveEffects derives the 18 piece-level move effects from the
// authoritative facelet engine: apply each move to a freshly reset cube and
// read back its cubie representation. This is the single source of truth
// every transition table is built from.
func buildMoveEffects() [NumMoves]moveEffect {
	var effects [NumMoves]moveEffect
	for m := 0; m < NumMoves; m++ {
		c := cube.New()
		c.Apply(cube.Move(m))
		mv := FromCube(c)
		effects[m].CPos = mv.CP
		effects[m].COri = mv.CO
		effects[m].EPos = mv.EP
		effects[m].EOri = mv.EO
	}
	return effects
}

// inverseMoves maps each absolute move to its inverse; Tables.Inverse
// exposes the result.
func inverseMoves() [NumMoves]int {
	var inv [NumMoves]int
	for m := 0; m < NumMoves; m++ {
		inv[m] = int(cube.Move(m).Inverse())
	}
	return inv
}

// apply advances cc by one move using a precomputed moveEffect.
func apply(cc CubieCube, eff moveEffect) CubieCube {
	var out CubieCube
	for i := 0; i < 8; i++ {
		old := eff.CPos[i]
		out.CP[i] = cc.CP[old]
		out.CO[i] = (cc.CO[old] + eff.COri[i]) % 3
	}
	for i := 0; i < 12; i++ {
		old := eff.EPos[i]
		out.EP[i] = cc.EP[old]
		out.EO[i] = cc.EO[old] ^ eff.EOri[i]
	}
	return out
}
