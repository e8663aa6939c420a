package cube

// Corner and edge cubie identity, derived from facelet colors rather than
// stored directly. Corner k's three facelets are listed U/D-face first,
// then clockwise; edge k's two facelets are listed U/D (or F/B, for slice
// edges) first. Both tables and the canonical cubie order are fixed by the
// external interface (see the repository's facelet-layout design notes).
const (
	CornerURF = iota
	CornerUFL
	CornerULB
	CornerUBR
	CornerDFR
	CornerDLF
	CornerDBL
	CornerDRB
)

const (
	EdgeUR = iota
	EdgeUF
	EdgeUL
	EdgeUB
	EdgeDR
	EdgeDF
	EdgeDL
	EdgeDB
	EdgeFR
	EdgeFL
	EdgeBL
	EdgeBR
)

var cornerFacelets = [8][3]int{
	{idx(FaceU, 8), idx(FaceR, 0), idx(FaceF, 2)}, // URF
	{idx(FaceU, 6), idx(FaceF, 0), idx(FaceL, 2)}, // UFL
	{idx(FaceU, 0), idx(FaceL, 0), idx(FaceB, 2)}, // ULB
	{idx(FaceU, 2), idx(FaceB, 0), idx(FaceR, 2)}, // UBR
	{idx(FaceD, 2), idx(FaceF, 8), idx(FaceR, 6)}, // DFR
	{idx(FaceD, 0), idx(FaceL, 8), idx(FaceF, 6)}, // DLF
	{idx(FaceD, 6), idx(FaceB, 8), idx(FaceL, 6)}, // DBL
	{idx(FaceD, 8), idx(FaceR, 8), idx(FaceB, 6)}, // DRB
}

var cornerColors = [8][3]Color{
	{White, Blue, Red},     // URF
	{White, Red, Green},    // UFL
	{White, Green, Orange}, // ULB
	{White, Orange, Blue},  // UBR
	{Yellow, Red, Blue},    // DFR
	{Yellow, Green, Red},   // DLF
	{Yellow, Orange, Green}, // DBL
	{Yellow, Blue, Orange}, // DRB
}

var edgeFacelets = [12][2]int{
	{idx(FaceU, 5), idx(FaceR, 1)}, // UR
	{idx(FaceU, 7), idx(FaceF, 1)}, // UF
	{idx(FaceU, 3), idx(FaceL, 1)}, // UL
	{idx(FaceU, 1), idx(FaceB, 1)}, // UB
	{idx(FaceD, 5), idx(FaceR, 7)}, // DR
	{idx(FaceD, 1), idx(FaceF, 7)}, // DF
	{idx(FaceD, 3), idx(FaceL, 7)}, // DL
	{idx(FaceD, 7), idx(FaceB, 7)}, // DB
	{idx(FaceF, 5), idx(FaceR, 3)}, // FR
	{idx(FaceF, 3), idx(FaceL, 5)}, // FL
	{idx(FaceB, 5), idx(FaceL, 3)}, // BL
	{idx(FaceB, 3), idx(FaceR, 5)}, // BR
}

var edgeColors = [12][2]Color{
	{White, Blue},    // UR
	{White, Red},     // UF
	{White, Green},   // UL
	{White, Orange},  // UB
	{Yellow, Blue},   // DR
	{Yellow, Red},    // DF
	{Yellow, Green},  // DL
	{Yellow, Orange}, // DB
	{Red, Blue},      // FR
	{Red, Green},     // FL
	{Orange, Green},  // BL
	{Orange, Blue},   // BR
}

// CornerPermutation decodes which corner cubie currently occupies position
// pos (0..7, canonical URF..DRB order) by matching its three facelet colors
// against the fixed per-corner color triples. Returns -1 if no corner
// matches, which callers must treat as "not solvable".
func (c *Cube) CornerPermutation(pos int) int {
	c0 := c.Facelets[cornerFacelets[pos][0]]
	c1 := c.Facelets[cornerFacelets[pos][1]]
	c2 := c.Facelets[cornerFacelets[pos][2]]
	if c0 == c1 || c1 == c2 || c0 == c2 {
		return -1
	}
	for k := 0; k < 8; k++ {
		colors := cornerColors[k]
		if hasColor(colors, c0) && hasColor(colors, c1) && hasColor(colors, c2) {
			return k
		}
	}
	return -1
}

func hasColor(colors [3]Color, c Color) bool {
	return colors[0] == c || colors[1] == c || colors[2] == c
}

// CornerOrientation decodes the orientation (0, 1, or 2) of the corner
// currently at position pos: 0 if the U/D-colored facelet sits on U or D,
// 1 if rotated clockwise once from that reference, 2 if counter-clockwise.
func (c *Cube) CornerOrientation(pos int) int {
	c0 := c.Facelets[cornerFacelets[pos][0]]
	if c0 == White || c0 == Yellow {
		return 0
	}
	c1 := c.Facelets[cornerFacelets[pos][1]]
	if c1 == White || c1 == Yellow {
		return 1
	}
	return 2
}

// EdgePermutation decodes which edge cubie currently occupies position pos
// (0..11, canonical UR..BR order). Returns -1 if no edge matches.
func (c *Cube) EdgePermutation(pos int) int {
	c0 := c.Facelets[edgeFacelets[pos][0]]
	c1 := c.Facelets[edgeFacelets[pos][1]]
	for e := 0; e < 12; e++ {
		ec := edgeColors[e]
		if (c0 == ec[0] && c1 == ec[1]) || (c0 == ec[1] && c1 == ec[0]) {
			return e
		}
	}
	return -1
}

// EdgeOrientation decodes the orientation (0 or 1) of the edge currently at
// position pos, per the flip convention: 0 iff the first facelet of the
// pair matches the first color of the identified edge's color pair.
func (c *Cube) EdgeOrientation(pos int) int {
	ep := c.EdgePermutation(pos)
	if ep < 0 {
		return 0
	}
	c0 := c.Facelets[edgeFacelets[pos][0]]
	if c0 == edgeColors[ep][0] {
		return 0
	}
	return 1
}

// IsSolvable runs the five solvability invariants: each color appears nine
// times, cp and ep are permutations of their domains, corner orientations
// sum to 0 mod 3, edge orientations sum to 0 mod 2, and cp/ep share parity.
// This is the authoritative gate; the solver trusts it and returns an empty
// solution for any cube that fails it.
func (c *Cube) IsSolvable() bool {
	var counts [6]int
	for _, col := range c.Facelets {
		if int(col) < 0 || int(col) >= 6 {
			return false
		}
		counts[col]++
	}
	for _, n := range counts {
		if n != 9 {
			return false
		}
	}

	var seenCorner, cornerPerm [8]int
	var seenEdge [12]int
	var edgePerm [12]int
	coSum := 0
	for i := 0; i < 8; i++ {
		cp := c.CornerPermutation(i)
		co := c.CornerOrientation(i)
		if cp < 0 || cp >= 8 || seenCorner[cp] != 0 {
			return false
		}
		seenCorner[cp] = 1
		cornerPerm[i] = cp
		coSum = (coSum + co) % 3
	}
	if coSum != 0 {
		return false
	}

	eoSum := 0
	for i := 0; i < 12; i++ {
		ep := c.EdgePermutation(i)
		eo := c.EdgeOrientation(i)
		if ep < 0 || ep >= 12 || seenEdge[ep] != 0 {
			return false
		}
		seenEdge[ep] = 1
		edgePerm[i] = ep
		eoSum = (eoSum + eo) % 2
	}
	if eoSum != 0 {
		return false
	}

	if parity(cornerPerm[:]) != parity(edgePerm[:]) {
		return false
	}
	return true
}

func parity(p []int) int {
	inv := 0
	for i := range p {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				inv++
			}
		}
	}
	return inv & 1
}
