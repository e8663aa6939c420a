// Package notation wraps the cube package's move parsing and formatting
// behind the narrower signatures the CLI wants: a sequence parse that
// reports an error for the first bad token instead of silently dropping it,
// for input a user typed directly rather than internal move lists.
package notation

import (
	"fmt"
	"strings"

	"github.com/arjwilde/cubesolve"
)

// Parse parses a single canonical notation token ("R", "R'", "R2", ...).
func Parse(s string) (cube.Move, error) {
	return cube.ParseMove(s)
}

// ParseSequence parses a space-separated sequence of moves, rejecting the
// whole sequence if any token fails to parse -- the CLI's entry point for
// user-typed scrambles, where a typo should be reported, not silently
// dropped.
func ParseSequence(s string) ([]cube.Move, error) {
	fields := strings.Fields(s)
	moves := make([]cube.Move, 0, len(fields))
	for _, f := range fields {
		m, err := cube.ParseMove(f)
		if err != nil {
			return nil, fmt.Errorf("notation: %q: %w", f, cube.ErrInvalidNotation)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Format renders a sequence of moves as space-separated canonical notation.
func Format(moves []cube.Move) string {
	return cube.FormatMoves(moves)
}
