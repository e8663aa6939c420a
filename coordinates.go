package cube

// The six solver coordinates extracted from a Cube's current piece
// permutation/orientation. Encoding conventions are fixed (see the
// repository's coordinate-codec design notes); each is the exact inverse of
// the corresponding decode used internally by the transition-table builder.

// COCoord encodes corner orientation as base-3 digits of co[0..6], most
// significant first. Range 0..2186 (3^7).
func (c *Cube) COCoord() int {
	coord := 0
	for i := 0; i < 7; i++ {
		coord = coord*3 + c.CornerOrientation(i)
	}
	return coord
}

// EOCoord encodes edge orientation as base-2 digits of eo[0..10], most
// significant first. Range 0..2047 (2^11).
func (c *Cube) EOCoord() int {
	coord := 0
	for i := 0; i < 11; i++ {
		coord = coord*2 + c.EdgeOrientation(i)
	}
	return coord
}

// binom is a small binomial-coefficient table, n<=12, k<=4, sufficient for
// the slice coordinate's combinatorial rank.
var binom = func() [13][5]int {
	var b [13][5]int
	for n := 0; n <= 12; n++ {
		for k := 0; k <= 4; k++ {
			switch {
			case k == 0 || k == n:
				b[n][k] = 1
			case k > n:
				b[n][k] = 0
			default:
				b[n][k] = b[n-1][k-1] + b[n-1][k]
			}
		}
	}
	return b
}()

// SliceCoord ranks which 4 of the 12 edge positions hold slice edges
// (FR, FL, BL, BR = edge ids 8..11). Scanning positions 11 down to 0,
// slice edges decrement a remaining-count k; non-slice positions with k>0
// add C(i,k-1). The solved cube (slice edges already at positions 8..11)
// yields 0. Range 0..494 (C(12,4)-1).
func (c *Cube) SliceCoord() int {
	coord := 0
	k := 4
	for i := 11; i >= 0; i-- {
		if c.EdgePermutation(i) >= 8 {
			k--
		} else if k > 0 {
			coord += binom[i][k-1]
		}
	}
	return coord
}

var fact8 = [9]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

// lehmerCoord computes the factorial-number-system rank of permutation p
// (length n<=8): coord = sum_i cnt(i) * (n-1-i)! where cnt(i) counts later
// elements smaller than p[i].
func lehmerCoord(p []int) int {
	n := len(p)
	coord := 0
	for i := 0; i < n; i++ {
		cnt := 0
		for j := i + 1; j < n; j++ {
			if p[j] < p[i] {
				cnt++
			}
		}
		coord += cnt * fact8[n-1-i]
	}
	return coord
}

// CPCoord encodes the corner permutation via the Lehmer code / factorial
// number system. Range 0..40319 (8!).
func (c *Cube) CPCoord() int {
	p := make([]int, 8)
	for i := 0; i < 8; i++ {
		p[i] = c.CornerPermutation(i)
	}
	return lehmerCoord(p)
}

// EPCoord encodes the permutation of the 8 non-slice edges (positions
// 0..7). Range 0..40319 (8!).
func (c *Cube) EPCoord() int {
	p := make([]int, 8)
	for i := 0; i < 8; i++ {
		p[i] = c.EdgePermutation(i)
	}
	return lehmerCoord(p)
}

// SPCoord encodes the permutation of the 4 slice edges among positions
// 8..11. Range 0..23 (4!).
func (c *Cube) SPCoord() int {
	p := make([]int, 4)
	for i := 0; i < 4; i++ {
		p[i] = c.EdgePermutation(i+8) - 8
	}
	return lehmerCoord(p)
}
