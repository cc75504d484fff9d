package session

import (
	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/engine"
)

// MissionState is a mission definition plus its accumulated progress.
// Done is monotonic: once true it never reverts, and the bonus is
// awarded exactly once, on the move where the transition happens.
type MissionState struct {
	config.Mission
	Done     bool
	Progress int
}

func newMissionStates(defs []config.Mission) []MissionState {
	if len(defs) == 0 {
		return nil
	}
	states := make([]MissionState, len(defs))
	for i, d := range defs {
		states[i] = MissionState{Mission: d}
	}
	return states
}

// updateMissions re-evaluates every mission after a completed move and
// returns the sum of bonuses for missions that just transitioned to
// done.
func (c *Controller) updateMissions() int {
	if len(c.missions) == 0 {
		return 0
	}

	maxTile := engine.MaxTile(c.grid)
	bonus := 0
	for i := range c.missions {
		m := &c.missions[i]
		switch m.Type {
		case config.MissionReachTile:
			m.Progress = maxTile
		case config.MissionMergeStreak:
			// High-water mark: the streak resetting must not erase
			// visible progress.
			if c.mergeStreak > m.Progress {
				m.Progress = c.mergeStreak
			}
		case config.MissionReachScore:
			m.Progress = c.score
		}

		if !m.Done && m.Progress >= m.Value {
			m.Done = true
			bonus += m.Bonus
		}
	}
	return bonus
}
