// Package solver implements the two-phase (Kociemba-style) IDA* search:
// phase 1 drives a cube into the G1 subgroup (corner orientation, edge
// orientation, and the slice-edge set all solved) over the full 18-move
// set; phase 2 restores the rest of the cube within G1 using the 10-move
// subgroup that fixes G1 as a set.
//
// It depends on the cube package for the Cube/Move types and on the
// internal coordinate/table package for the precomputed search data; the
// cube package itself does not depend on solver, so embedding a cube in a
// larger program never pulls the search engine in unless this package is
// imported too.
package solver

import (
	"context"
	"sync/atomic"

	"github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/internal/coord"
)

// Progress reports search activity back to a caller watching a long solve,
// e.g. the CLI's --watch flag. Safe for concurrent reads while Solve runs.
type Progress struct {
	Nodes atomic.Uint64
	Depth atomic.Int64 // -1 while tables are still being built
}

const (
	maxPhase1Depth = 12
	maxTotalDepth  = 31
)

// Solve searches for a move sequence that brings c to the solved state,
// following the caller's cube only for its starting position: c itself is
// never mutated. Returns nil if c is already solved. ctx cancellation and
// progress are both optional (progress may be nil).
func Solve(ctx context.Context, c *cube.Cube, progress *Progress) ([]cube.Move, error) {
	if c.IsSolved() {
		return nil, nil
	}
	if !c.IsSolvable() {
		return nil, cube.ErrUnsolvable
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if progress != nil {
		progress.Nodes.Store(0)
		progress.Depth.Store(-1)
	}

	tables := coord.Get() // built once per process; first solve pays the cost

	if progress != nil {
		progress.Depth.Store(0)
	}

	start := coord.FromCube(c)

	s := &search{tables: tables, ctx: ctx, progress: progress}

	var path1, path2 []int
	for d1 := 0; d1 <= maxPhase1Depth; d1++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if progress != nil {
			progress.Depth.Store(int64(d1))
		}

		path1 = path1[:0]
		cc := start
		found, p2, err := s.phase1(cc, d1, -1, path1, maxTotalDepth)
		if err != nil {
			return nil, err
		}
		if found != nil {
			path1 = found
			path2 = p2
			break
		}
	}
	if path1 == nil {
		return nil, nil
	}

	moves := make([]cube.Move, 0, len(path1)+len(path2))
	for _, m := range path1 {
		moves = append(moves, cube.Move(m))
	}
	for _, m := range path2 {
		moves = append(moves, cube.Move(m))
	}
	return moves, nil
}

type search struct {
	tables   *coord.Tables
	ctx      context.Context
	progress *Progress
}

// moveAllowedPrune rejects redundant move pairs before they reach the
// table lookup: repeating a face, or turning the smaller-indexed face of
// an opposite pair right after its partner (U after D, L after R, F after
// B) -- both generate positions reachable by a shorter path.
func moveAllowedPrune(move, lastMove int) bool {
	if lastMove < 0 {
		return true
	}
	face, lastFace := move/3, lastMove/3
	if face == lastFace {
		return false
	}
	if face/2 == lastFace/2 && face < lastFace {
		return false
	}
	return true
}

// phase1 searches for a depth-exact phase-1 path from cc, returning a copy
// of the path it found along with the phase-2 continuation discovered at
// the leaf. A nil, nil, nil result means "not found at this depth."
func (s *search) phase1(cc coord.CubieCube, depth, lastMove int, path []int, maxTotal int) ([]int, []int, error) {
	select {
	case <-s.ctx.Done():
		return nil, nil, s.ctx.Err()
	default:
	}
	if s.progress != nil {
		s.progress.Nodes.Add(1)
	}

	co := coord.CornerOriCoord(cc.CO)
	eo := coord.EdgeOriCoord(cc.EO)
	sl := coord.SliceCoord(cc.EP)
	h1 := int(s.tables.PruneCoSlice[co*coord.SliceSize+sl])
	h2 := int(s.tables.PruneEoSlice[eo*coord.SliceSize+sl])
	if max(h1, h2) > depth {
		return nil, nil, nil
	}

	if depth == 0 {
		if co != 0 || eo != 0 || sl != 0 {
			return nil, nil, nil
		}
		cp := coord.Perm8Coord(cc.CP)
		ep := coord.EdgePerm8Coord(cc.EP)
		sp := coord.SlicePermCoord(cc.EP)

		maxDepth2 := maxTotal - len(path)
		for d2 := 0; d2 <= maxDepth2; d2++ {
			path2, err := s.phase2(cp, ep, sp, d2, -1, nil)
			if err != nil {
				return nil, nil, err
			}
			if path2 != nil {
				return append([]int{}, path...), path2, nil
			}
			select {
			case <-s.ctx.Done():
				return nil, nil, s.ctx.Err()
			default:
			}
		}
		return nil, nil, nil
	}

	for m := 0; m < coord.NumMoves; m++ {
		if !moveAllowedPrune(m, lastMove) {
			continue
		}
		next := s.tables.Apply(cc, m)
		path = append(path, m)
		found, path2, err := s.phase1(next, depth-1, m, path, maxTotal)
		if err != nil {
			return nil, nil, err
		}
		if found != nil {
			return found, path2, nil
		}
		path = path[:len(path)-1]
	}
	return nil, nil, nil
}

// phase2 mirrors phase1 but over the 10-move subgroup and the cp/ep/sp
// coordinate triple.
func (s *search) phase2(cp, ep, sp, depth, lastMove int, path []int) ([]int, error) {
	select {
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	default:
	}
	if s.progress != nil {
		s.progress.Nodes.Add(1)
	}

	h1 := int(s.tables.PruneCpSp[cp*coord.SPSize+sp])
	h2 := int(s.tables.PruneEpSp[ep*coord.SPSize+sp])
	if max(h1, h2) > depth {
		return nil, nil
	}

	if depth == 0 {
		if cp == 0 && ep == 0 && sp == 0 {
			return append([]int{}, path...), nil
		}
		return nil, nil
	}

	for mi, m := range coord.Phase2Moves {
		if !moveAllowedPrune(m, lastMove) {
			continue
		}
		ncp := int(s.tables.CpMove[cp][mi])
		nep := int(s.tables.EpMove[ep][mi])
		nsp := int(s.tables.SpMove[sp][mi])

		path = append(path, m)
		found, err := s.phase2(ncp, nep, nsp, depth-1, m, path)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
		path = path[:len(path)-1]
	}
	return nil, nil
}
