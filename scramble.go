package cube

import "math/rand/v2"

// Scramble resets the cube and applies n uniformly random face turns from
// the full 18-move set. The result is always solvable: any sequence of
// legal moves starting from solved stays in the reachable group.
func (c *Cube) Scramble(n int) []Move {
	c.Reset()
	moves := make([]Move, n)
	for i := range moves {
		m := Move(rand.IntN(int(NumMoves)))
		moves[i] = m
		c.Apply(m)
	}
	return moves
}
