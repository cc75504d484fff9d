// Package engine implements the deterministic merge-grid mechanics:
// line reduction, directional moves with a motion ledger, tile spawning,
// and terminal-state detection. Everything except Spawn is a pure
// function; Spawn draws from an injected *rand.Rand.
package engine

// Size is the board dimension. Boards are always Size x Size.
const Size = 4

// Grid is a Size x Size matrix of tile values. 0 means empty.
type Grid [Size][Size]int

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if at least one cell is empty.
func HasEmptyCell(g Grid) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasAdjacentEqual returns true if any horizontally or vertically
// adjacent pair of cells holds equal non-zero values.
func HasAdjacentEqual(g Grid) bool {
	for r := range Size {
		for c := range Size {
			v := g[r][c]
			if v == 0 {
				continue
			}
			if c < Size-1 && g[r][c+1] == v {
				return true
			}
			if r < Size-1 && g[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any move can still change the grid.
// Must be evaluated after the post-move spawn, never mid-move.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasAdjacentEqual(g)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func TileCount(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
