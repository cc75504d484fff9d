package engine

// Motion records one tile's journey during a move, in true board
// coordinates. Two motions sharing a destination with Merged set are the
// pair that combined there; the resulting tile shows Value*2. Ordering
// is insertion order within each reduced line, lines in board order.
type Motion struct {
	FromRow, FromCol int
	ToRow, ToCol     int
	Value            int
	Merged           bool
}

// MoveResult is the outcome of applying one direction to a grid.
// Produced fresh on each call; the input grid is never mutated.
type MoveResult struct {
	Changed   bool
	Grid      Grid
	ScoreGain int
	Motions   []Motion
}

// Move slides and merges the grid in the given direction.
//
// Changed is true iff the resulting grid differs from the input in any
// cell. A no-op move carries no motions and zero gain, so callers can
// treat the result as "nothing happened" without inspecting the grid.
func Move(g Grid, dir Direction) MoveResult {
	var next Grid
	var motions []Motion
	gain := 0

	for line := range Size {
		values, lineMotions, lineGain := reduceLine(orientedLine(g, dir, line))
		gain += lineGain

		for i := range Size {
			r, c := orient(dir, line, i)
			next[r][c] = values[i]
		}
		for _, m := range lineMotions {
			fr, fc := orient(dir, line, m.From)
			tr, tc := orient(dir, line, m.To)
			motions = append(motions, Motion{
				FromRow: fr, FromCol: fc,
				ToRow: tr, ToCol: tc,
				Value:  m.Value,
				Merged: m.Merged,
			})
		}
	}

	if next == g {
		return MoveResult{Changed: false, Grid: g}
	}
	return MoveResult{Changed: true, Grid: next, ScoreGain: gain, Motions: motions}
}
