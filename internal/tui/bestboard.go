package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/akorchagin/merge48/internal/storage"
)

const maxBestboardRows = 100

// BestboardKeyMap defines the key bindings for the best-scores screen.
type BestboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BestboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BestboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultBestboardKeyMap returns default key bindings.
func DefaultBestboardKeyMap() BestboardKeyMap {
	return BestboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BestboardModel is the Bubble Tea model for the per-variant
// best-scores screen.
type BestboardModel struct {
	variantKey  string
	variantName string
	best        int
	games       []storage.GameRecord
	table       table.Model
	help        help.Model
	keys        BestboardKeyMap
	width       int
	height      int
	quitting    bool
}

// NewBestboardModel loads the variant's history and builds the table.
func NewBestboardModel(store *storage.Store, variantKey, variantName string, width, height int) BestboardModel {
	keys := DefaultBestboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := BestboardModel{
		variantKey:  variantKey,
		variantName: variantName,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
	}

	if store != nil {
		if best, err := store.Best(variantKey); err == nil {
			m.best = best
		}
		if games, err := store.TopGames(variantKey, maxBestboardRows); err == nil {
			m.games = games
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates the results table with appropriate columns.
func (m *BestboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max Tile", Width: 10},
		{Title: "Won", Width: 5},
		{Title: "Date", Width: 18},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the loaded history.
func (m *BestboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.games))
	for i, g := range m.games {
		won := ""
		if g.Won {
			won = "✓"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.MaxTile),
			won,
			g.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m BestboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BestboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the best-scores screen.
func (m BestboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := hudValueStyle.Render(fmt.Sprintf("BEST SCORES - %s", m.variantName))
	bestLine := hudLabelStyle.Render("all-time best ") +
		hudValueStyle.Render(fmt.Sprintf("%d", m.best))

	var body string
	if len(m.games) == 0 {
		body = missionOpenStyle.Italic(true).Padding(2, 4).
			Render("No games recorded yet.\nFinish a game to appear here!")
	} else {
		body = m.table.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		bestLine,
		"",
		boardStyle.Render(body),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunBestboard runs the best-scores screen and blocks until dismissed.
func RunBestboard(store *storage.Store, variantKey, variantName string, width, height int) error {
	model := NewBestboardModel(store, variantKey, variantName, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
