// Package config provides YAML-based game variant definitions: win
// target, spawn odds, revive rules, combo scoring, and missions.
package config

// Variant describes one rule set for the merge grid.
type Variant struct {
	Key      string    `yaml:"key"`       // storage key, e.g. "classic"
	Name     string    `yaml:"name"`      // display name
	Target   int       `yaml:"target"`    // tile value that triggers the win flag (0 = no win)
	FourProb float64   `yaml:"four_prob"` // probability of spawning 4 instead of 2
	Revive   Revive    `yaml:"revive"`
	Combo    Combo     `yaml:"combo"`
	Missions []Mission `yaml:"missions"`
}

// Revive defines the one-shot comeback rule after game over.
type Revive struct {
	Enabled bool `yaml:"enabled"`
	Penalty int  `yaml:"penalty"` // score divisor applied on revive
	Cells   int  `yaml:"cells"`   // non-empty cells cleared to zero
}

// Combo defines the consecutive-merge score multiplier.
type Combo struct {
	Enabled bool `yaml:"enabled"`
	Base    int  `yaml:"base"` // multiplier after a move without merges
	Step    int  `yaml:"step"` // increment per merge-producing move
	Max     int  `yaml:"max"`
}

// Mission types understood by the session controller.
const (
	MissionReachTile   = "reach_tile"
	MissionMergeStreak = "merge_streak"
	MissionReachScore  = "reach_score"
)

// Mission defines one completion predicate with a one-time score bonus.
type Mission struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
	Value       int    `yaml:"value"`
	Bonus       int    `yaml:"bonus"`
}

// Multiplier returns the multiplier applied to a move's gain given the
// current combo level, clamped to [Base, Max]. A disabled combo always
// multiplies by 1.
func (c Combo) Multiplier(level int) int {
	if !c.Enabled {
		return 1
	}
	if level < c.Base {
		return c.Base
	}
	if c.Max > 0 && level > c.Max {
		return c.Max
	}
	return level
}
