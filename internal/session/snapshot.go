package session

import "github.com/akorchagin/merge48/internal/engine"

// Snapshot is what the presentation layer receives after each completed
// move (and once at initialization, with no motions). The motion ledger
// and spawn record are enough to animate the transition without diffing
// grids; everything else is display state.
type Snapshot struct {
	Grid    engine.Grid
	Motions []engine.Motion
	Spawn   *engine.SpawnResult

	ScoreGain int // gain applied this move, multiplier included
	Bonus     int // mission bonuses awarded this move
	Combo     int

	Score int
	Best  int

	HasWon   bool
	WonNow   bool // win flag set by this very move
	GameOver bool

	Missions []MissionState
}

// Snapshot returns the current session state without move-specific
// fields (motions, spawn, gains).
func (c *Controller) Snapshot() Snapshot {
	var missions []MissionState
	if len(c.missions) > 0 {
		missions = make([]MissionState, len(c.missions))
		copy(missions, c.missions)
	}

	return Snapshot{
		Grid:     c.grid,
		Combo:    c.combo,
		Score:    c.score,
		Best:     c.best,
		HasWon:   c.hasWon,
		GameOver: c.gameOver,
		Missions: missions,
	}
}
