package cube

import "strings"

// Move is one of the 18 face turns: one per (face, turn-kind) pair, turn-kind
// in {CW, CCW, 180}. The integer value doubles as a dense table index used
// throughout the solver, so the enumeration order below is part of the
// public contract: U, U', U2, D, D', D2, L, L', L2, R, R', R2, F, F', F2,
// B, B', B2.
type Move int

const (
	MoveU Move = iota
	MoveUPrime
	MoveU2
	MoveD
	MoveDPrime
	MoveD2
	MoveL
	MoveLPrime
	MoveL2
	MoveR
	MoveRPrime
	MoveR2
	MoveF
	MoveFPrime
	MoveF2
	MoveB
	MoveBPrime
	MoveB2
	NumMoves // 18
)

// Kind is the direction and magnitude of a face turn.
type Kind int

const (
	CW     Kind = 0 // quarter turn, clockwise
	CCW    Kind = 1 // quarter turn, counter-clockwise
	Double Kind = 2 // half turn
)

var moveNames = [NumMoves]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"L", "L'", "L2",
	"R", "R'", "R2",
	"F", "F'", "F2",
	"B", "B'", "B2",
}

// Face returns the face this move turns.
func (m Move) Face() Face {
	return Face(int(m) / 3)
}

// Kind returns the turn direction/magnitude of this move.
func (m Move) Kind() Kind {
	return Kind(int(m) % 3)
}

// String returns the canonical notation, e.g. "R", "R'", "R2".
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "?"
	}
	return moveNames[m]
}

// Inverse returns the move that undoes m: half turns are self-inverse,
// quarter turns flip CW<->CCW.
func (m Move) Inverse() Move {
	switch m.Kind() {
	case CW:
		return m + 1
	case CCW:
		return m - 1
	default: // Double
		return m
	}
}

// ParseMove parses a single canonical notation token ("R", "R'", "R2", ...).
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return 0, ErrInvalidNotation
	}

	kind := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			kind = CCW
		case "2", "2'":
			kind = Double
		default:
			return 0, ErrInvalidNotation
		}
	}

	return Move(int(face)*3 + int(kind)), nil
}

// ParseSequence parses a space-separated sequence of moves, e.g. "R U R' U'".
// Unrecognized tokens are skipped, matching the permissive convention of
// interactive notation entry.
func ParseSequence(s string) []Move {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// FormatMoves renders a sequence of moves as space-separated canonical
// notation.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
