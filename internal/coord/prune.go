package coord

// Pruning tables: exact BFS distance from solved, used as an admissible
// (and in practice very tight) IDA* heuristic. Each table packs two
// coordinates into one flat index and is filled breadth-first outward from
// the solved pair, so every entry is already minimal by the time it's
// written -- unlike the move tables, these need no moveEffect replay, just
// the already-built move tables above.

const unvisited = 0xFF

func (t *Tables) buildPruningTables() {
	t.PruneCoSlice = bfsPrune18(COSize, SliceSize, t.CoMove, t.SliceMove)
	t.PruneEoSlice = bfsPrune18(EOSize, SliceSize, t.EoMove, t.SliceMove)
	t.PruneCpSp = bfsPrune10(CPSize, SPSize, t.CpMove, widenSp(t.SpMove))
	t.PruneEpSp = bfsPrune10(EPSize, SPSize, t.EpMove, widenSp(t.SpMove))
}

// widenSp lifts the byte-valued SpMove table to uint16 so it shares the
// phase-2 pruning builder's column type with CpMove/EpMove.
func widenSp(sp [][Phase2MoveCount]uint8) [][Phase2MoveCount]uint16 {
	out := make([][Phase2MoveCount]uint16, len(sp))
	for i, row := range sp {
		for m, v := range row {
			out[i][m] = uint16(v)
		}
	}
	return out
}

// bfsPrune18 breadth-first-searches the product space [0,aSize) x
// [0,bSize) over all 18 moves, starting from (0,0), and returns the
// flattened (a*bSize+b) distance table.
func bfsPrune18(aSize, bSize int, aMove, bMove [][NumMoves]uint16) []uint8 {
	dist := make([]uint8, aSize*bSize)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[0] = 0
	queue := make([]int32, 1, aSize*bSize/4+1)
	queue[0] = 0

	for head := 0; head < len(queue); head++ {
		cur := int(queue[head])
		a, b := cur/bSize, cur%bSize
		d := dist[cur] + 1
		for m := 0; m < NumMoves; m++ {
			na := int(aMove[a][m])
			nb := int(bMove[b][m])
			ni := na*bSize + nb
			if dist[ni] == unvisited {
				dist[ni] = d
				queue = append(queue, int32(ni))
			}
		}
	}
	return dist
}

// bfsPrune10 is bfsPrune18's phase-2 twin: same BFS, over the 10-move
// phase-2 generator instead of the full 18.
func bfsPrune10(aSize, bSize int, aMove, bMove [][Phase2MoveCount]uint16) []uint8 {
	dist := make([]uint8, aSize*bSize)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[0] = 0
	queue := make([]int32, 1, aSize*bSize/4+1)
	queue[0] = 0

	for head := 0; head < len(queue); head++ {
		cur := int(queue[head])
		a, b := cur/bSize, cur%bSize
		d := dist[cur] + 1
		for m := 0; m < Phase2MoveCount; m++ {
			na := int(aMove[a][m])
			nb := int(bMove[b][m])
			ni := na*bSize + nb
			if dist[ni] == unvisited {
				dist[ni] = d
				queue = append(queue, int32(ni))
			}
		}
	}
	return dist
}
