package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akorchagin/merge48/internal/engine"
	"github.com/akorchagin/merge48/internal/session"
)

const cellWidth = 7

// tileColors maps tile values to a warm color ramp. Values above the
// last entry reuse the hottest color.
var tileColors = map[int]lipgloss.Color{
	2:    lipgloss.Color("252"),
	4:    lipgloss.Color("230"),
	8:    lipgloss.Color("222"),
	16:   lipgloss.Color("216"),
	32:   lipgloss.Color("214"),
	64:   lipgloss.Color("208"),
	128:  lipgloss.Color("220"),
	256:  lipgloss.Color("226"),
	512:  lipgloss.Color("227"),
	1024: lipgloss.Color("190"),
	2048: lipgloss.Color("201"),
}

var (
	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hudValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	missionDoneStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46"))

	missionOpenStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func tileStyle(value int, highlighted bool) lipgloss.Style {
	color, ok := tileColors[value]
	if !ok {
		color = tileColors[2048]
	}
	s := lipgloss.NewStyle().Bold(true).Foreground(color)
	if highlighted {
		s = s.Reverse(true)
	}
	return s
}

// renderBoard draws the grid with the given cells highlighted (merge
// destinations and the fresh spawn during the animation window).
func renderBoard(g engine.Grid, highlights map[engine.Cell]struct{}) string {
	var rows []string
	for r := 0; r < engine.Size; r++ {
		cells := make([]string, engine.Size)
		for c := 0; c < engine.Size; c++ {
			v := g[r][c]
			if v == 0 {
				cells[c] = emptyCellStyle.Render(centerCell("·"))
				continue
			}
			_, hl := highlights[engine.Cell{Row: r, Col: c}]
			cells[c] = tileStyle(v, hl).Render(centerCell(fmt.Sprintf("%d", v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(strings.Join(rows, "\n"))
}

// centerCell pads the text to the fixed cell width.
func centerCell(text string) string {
	if len(text) >= cellWidth {
		return text[:cellWidth]
	}
	left := (cellWidth - len(text)) / 2
	right := cellWidth - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// renderHUD draws the score line and, when the variant has them, the
// combo meter and mission list.
func renderHUD(snap session.Snapshot, variantName string, comboEnabled bool) string {
	var b strings.Builder

	b.WriteString(hudValueStyle.Render(variantName))
	b.WriteString("\n")

	b.WriteString(hudLabelStyle.Render("score "))
	b.WriteString(hudValueStyle.Render(fmt.Sprintf("%-8d", snap.Score)))
	b.WriteString(hudLabelStyle.Render(" best "))
	b.WriteString(hudValueStyle.Render(fmt.Sprintf("%-8d", snap.Best)))
	if comboEnabled {
		b.WriteString(hudLabelStyle.Render(" combo "))
		b.WriteString(hudValueStyle.Render(fmt.Sprintf("x%d", snap.Combo)))
	}

	if snap.ScoreGain > 0 {
		b.WriteString(hudValueStyle.Render(fmt.Sprintf("  +%d", snap.ScoreGain)))
	}
	if snap.Bonus > 0 {
		b.WriteString(missionDoneStyle.Render(fmt.Sprintf("  bonus +%d", snap.Bonus)))
	}

	if len(snap.Missions) > 0 {
		b.WriteString("\n")
		for _, m := range snap.Missions {
			b.WriteString("\n")
			if m.Done {
				b.WriteString(missionDoneStyle.Render(fmt.Sprintf("  ✓ %s", m.Description)))
			} else {
				b.WriteString(missionOpenStyle.Render(
					fmt.Sprintf("  · %s (%d/%d)", m.Description, m.Progress, m.Value)))
			}
		}
	}

	return b.String()
}

// renderStatus draws the win/game-over banner line, or an empty string
// while nothing special is going on.
func renderStatus(snap session.Snapshot, reviveAvailable bool) string {
	switch {
	case snap.GameOver && reviveAvailable:
		return gameOverStyle.Render("GAME OVER") +
			hudLabelStyle.Render("  press v to revive, n for a new game")
	case snap.GameOver:
		return gameOverStyle.Render("GAME OVER") +
			hudLabelStyle.Render("  press n for a new game")
	case snap.HasWon:
		return winStyle.Render("YOU WIN!") +
			hudLabelStyle.Render("  keep playing for a higher score")
	}
	return ""
}
