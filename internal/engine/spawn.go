package engine

import "math/rand"

// DefaultFourProb is the classic probability of spawning a 4 instead of a 2.
const DefaultFourProb = 0.10

// SpawnResult describes the tile injected after a successful move.
type SpawnResult struct {
	Row, Col int
	Value    int
}

// Spawn places one new tile in a uniformly chosen empty cell: 4 with
// probability fourProb, otherwise 2. Returns false if the grid is full,
// which callers treat as the terminal-condition trigger, not an error.
//
// This is the engine's only source of randomness; rng is injected so
// move sequences are reproducible under a fixed seed.
func Spawn(g *Grid, rng *rand.Rand, fourProb float64) (SpawnResult, bool) {
	empty := EmptyCells(*g)
	if len(empty) == 0 {
		return SpawnResult{}, false
	}

	cell := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}
	g[cell.Row][cell.Col] = value

	return SpawnResult{Row: cell.Row, Col: cell.Col, Value: value}, true
}
