// Package session owns the game state machine: it drives the engine in
// response to direction commands, applies variant scoring rules (combo
// multiplier, mission bonuses), tracks win/game-over/revive, and keeps
// the best score persisted per variant.
package session

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/engine"
)

// BestStore is the persistence capability for per-variant best scores.
// A failed read means "no prior best"; a failed write is logged, never
// fatal.
type BestStore interface {
	Best(variantKey string) (int, error)
	SetBest(variantKey string, best int) error
}

// Options configures a new controller.
type Options struct {
	Seed   int64      // RNG seed; 0 means derive from current time
	Store  BestStore  // may be nil (no persistence)
	Logger *log.Logger
}

// Controller holds one game session. All state lives here explicitly;
// it is single-threaded by contract and enforces at-most-one in-flight
// move via the animating gate.
type Controller struct {
	variant config.Variant
	store   BestStore
	logger  *log.Logger
	rng     *rand.Rand

	grid       engine.Grid
	score      int
	best       int
	hasWon     bool
	gameOver   bool
	reviveUsed bool
	animating  bool

	combo       int
	mergeStreak int
	missions    []MissionState
}

// New creates a controller for the given variant and starts a fresh
// game. The prior best score is read from the store; read failures
// degrade to best 0.
func New(variant config.Variant, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		variant: variant,
		store:   opts.Store,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}

	if c.store != nil {
		best, err := c.store.Best(variant.Key)
		if err != nil {
			logger.Warn("could not read best score", "variant", variant.Key, "error", err)
			best = 0
		}
		c.best = best
	}

	c.NewGame()
	return c
}

// NewGame resets everything except the best score: empty grid, two
// initial spawns, combo and missions back to their starting state.
func (c *Controller) NewGame() Snapshot {
	c.grid = engine.Grid{}
	c.score = 0
	c.hasWon = false
	c.gameOver = false
	c.reviveUsed = false
	c.animating = false
	c.mergeStreak = 0
	c.combo = c.variant.Combo.Multiplier(0)
	c.missions = newMissionStates(c.variant.Missions)

	engine.Spawn(&c.grid, c.rng, c.variant.FourProb)
	engine.Spawn(&c.grid, c.rng, c.variant.FourProb)

	return c.Snapshot()
}

// Move processes one direction command. Returns the post-move snapshot
// and whether the move was applied. A move is refused (false, no side
// effects) while a previous move is still animating, after game over,
// or when the direction would not change the grid.
func (c *Controller) Move(dir engine.Direction) (Snapshot, bool) {
	if c.animating || c.gameOver {
		return Snapshot{}, false
	}

	res := engine.Move(c.grid, dir)
	if !res.Changed {
		return Snapshot{}, false
	}

	c.grid = res.Grid

	// The multiplier is updated first and applied to this move's gain,
	// so consecutive merge moves compound immediately.
	merged := res.ScoreGain > 0
	if merged {
		c.mergeStreak++
		if c.variant.Combo.Enabled {
			c.combo = c.variant.Combo.Multiplier(c.combo + c.variant.Combo.Step)
		}
	} else {
		c.mergeStreak = 0
		c.combo = c.variant.Combo.Multiplier(0)
	}

	gain := res.ScoreGain * c.combo
	c.score += gain

	var spawnPtr *engine.SpawnResult
	if spawn, ok := engine.Spawn(&c.grid, c.rng, c.variant.FourProb); ok {
		spawnPtr = &spawn
	}

	wonNow := false
	if !c.hasWon && c.variant.Target > 0 && engine.MaxTile(c.grid) >= c.variant.Target {
		c.hasWon = true
		wonNow = true
	}

	bonus := c.updateMissions()
	c.score += bonus

	c.persistBest()

	if !engine.CanMove(c.grid) {
		c.gameOver = true
	}

	c.animating = true

	snap := c.Snapshot()
	snap.Motions = res.Motions
	snap.Spawn = spawnPtr
	snap.ScoreGain = gain
	snap.Bonus = bonus
	snap.WonNow = wonNow
	return snap, true
}

// Revive performs the one-shot comeback: divide the score by the
// variant's penalty, clear a fixed number of random non-empty cells,
// and resume play. Returns false (no side effects) when revive is
// unsupported, unused game-over state is absent, or already spent.
func (c *Controller) Revive() bool {
	rv := c.variant.Revive
	if !c.gameOver || c.reviveUsed || !rv.Enabled {
		return false
	}

	if rv.Penalty > 1 {
		c.score /= rv.Penalty
	}

	for i := 0; i < rv.Cells; i++ {
		var occupied []engine.Cell
		for r := range engine.Size {
			for col := range engine.Size {
				if c.grid[r][col] != 0 {
					occupied = append(occupied, engine.Cell{Row: r, Col: col})
				}
			}
		}
		if len(occupied) == 0 {
			break
		}
		cell := occupied[c.rng.Intn(len(occupied))]
		c.grid[cell.Row][cell.Col] = 0
	}

	c.reviveUsed = true
	c.gameOver = false
	c.animating = false
	return true
}

// FinishAnimation releases the move gate. The presentation layer calls
// this once its animation of the last snapshot completes.
func (c *Controller) FinishAnimation() {
	c.animating = false
}

// Animating reports whether a move is still being presented.
func (c *Controller) Animating() bool {
	return c.animating
}

// ReviveAvailable reports whether Revive would currently be applied.
func (c *Controller) ReviveAvailable() bool {
	return c.gameOver && !c.reviveUsed && c.variant.Revive.Enabled
}

// Variant returns the rule set this session runs under.
func (c *Controller) Variant() config.Variant {
	return c.variant
}

// persistBest raises the best score if beaten and writes it through the
// store. Write failures are logged and otherwise ignored.
func (c *Controller) persistBest() {
	if c.score <= c.best {
		return
	}
	c.best = c.score
	if c.store == nil {
		return
	}
	if err := c.store.SetBest(c.variant.Key, c.best); err != nil {
		c.logger.Warn("could not persist best score", "variant", c.variant.Key, "error", err)
	}
}
