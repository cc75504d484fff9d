package engine

// orient maps a line-local position to a board coordinate for the given
// direction. line selects which row/column is being reduced, idx is the
// position within it, with idx 0 at the edge the tiles slide toward.
//
// Applying the same map when reading lines, writing reduced values, and
// translating motion records keeps every emitted coordinate in the
// board's true orientation. Each map is its own inverse per direction,
// which is what lets a single "reduce toward index 0" routine serve all
// four moves.
func orient(dir Direction, line, idx int) (row, col int) {
	switch dir {
	case Left:
		return line, idx
	case Right:
		return line, Size - 1 - idx
	case Up:
		return idx, line
	default: // Down
		return Size - 1 - idx, line
	}
}

// orientedLine extracts the line'th row/column of g in reduction order
// for the given direction.
func orientedLine(g Grid, dir Direction, line int) [Size]int {
	var out [Size]int
	for i := range Size {
		r, c := orient(dir, line, i)
		out[i] = g[r][c]
	}
	return out
}
