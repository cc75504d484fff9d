// Package tui provides the Bubble Tea front end for playing a
// tile-merging session in the terminal, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the merge/spawn highlight animation by one frame.
type TickMsg time.Time

const (
	// animFrames is how many ticks the post-move highlight stays on
	// screen before the board accepts the next move.
	animFrames        = 6
	animFrameInterval = 40 * time.Millisecond
)

// animTickCmd returns a command that sends the next animation frame.
func animTickCmd() tea.Cmd {
	return tea.Tick(animFrameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
