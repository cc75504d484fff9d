package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/akorchagin/merge48/internal/config"
	"github.com/akorchagin/merge48/internal/engine"
	"github.com/akorchagin/merge48/internal/session"
	"github.com/akorchagin/merge48/internal/storage"
)

// GameModel is the Bubble Tea model for one play session. It owns the
// session controller, translates keys to moves, and drives the short
// highlight animation between a move being applied and the next one
// being accepted.
type GameModel struct {
	ctrl    *session.Controller
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	snap    session.Snapshot
	variant config.Variant

	// Animation state derived from the last move's motion ledger.
	highlights map[engine.Cell]struct{}
	framesLeft int

	width    int
	height   int
	recorded bool // Whether the current game over was written to history
	quitting bool
}

// NewGameModel creates a model for the given variant. A nil store means
// no persistence; the game still works.
func NewGameModel(variant config.Variant, store *storage.Store, seed int64, logger *log.Logger, width, height int) GameModel {
	if logger == nil {
		logger = log.Default()
	}

	opts := session.Options{
		Seed:   seed,
		Logger: logger,
	}
	// A nil *storage.Store must not become a non-nil BestStore.
	if store != nil {
		opts.Store = store
	}

	ctrl := session.New(variant, opts)

	h := help.New()
	h.ShowAll = false

	return GameModel{
		ctrl:    ctrl,
		store:   store,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		snap:    ctrl.Snapshot(),
		variant: variant,
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.snap = m.ctrl.NewGame()
		m.highlights = nil
		m.framesLeft = 0
		m.recorded = false
		return m, nil

	case key.Matches(msg, m.keys.Revive):
		if m.ctrl.Revive() {
			m.snap = m.ctrl.Snapshot()
			m.highlights = nil
			m.framesLeft = 0
			m.recorded = false
		}
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok {
		return m, nil
	}

	// Drop move keys mid-animation rather than queueing them.
	if m.ctrl.Animating() {
		return m, nil
	}

	snap, applied := m.ctrl.Move(dir)
	if !applied {
		return m, nil
	}
	m.snap = snap
	m.highlights = moveHighlights(snap)
	m.framesLeft = animFrames

	if snap.GameOver && !m.recorded {
		m.recordGame()
	}

	return m, animTickCmd()
}

// handleTick advances the highlight animation.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.framesLeft <= 0 {
		return m, nil
	}

	m.framesLeft--
	if m.framesLeft == 0 {
		m.ctrl.FinishAnimation()
		m.highlights = nil
		return m, nil
	}
	return m, animTickCmd()
}

// moveHighlights collects the cells that flash after a move: merge
// destinations from the motion ledger plus the spawned tile.
func moveHighlights(snap session.Snapshot) map[engine.Cell]struct{} {
	cells := make(map[engine.Cell]struct{})
	for _, mo := range snap.Motions {
		if mo.Merged {
			cells[engine.Cell{Row: mo.ToRow, Col: mo.ToCol}] = struct{}{}
		}
	}
	if snap.Spawn != nil {
		cells[engine.Cell{Row: snap.Spawn.Row, Col: snap.Spawn.Col}] = struct{}{}
	}
	return cells
}

// recordGame writes the finished game to history, best effort.
func (m *GameModel) recordGame() {
	m.recorded = true
	if m.store == nil {
		return
	}
	maxTile := engine.MaxTile(m.snap.Grid)
	if _, err := m.store.RecordGame(m.variant.Key, m.snap.Score, maxTile, m.snap.HasWon); err != nil {
		m.logger.Warn("could not record game", "variant", m.variant.Key, "error", err)
	}
}

// View renders the board, HUD, status banner and help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	board := renderBoard(m.snap.Grid, m.highlights)
	hud := renderHUD(m.snap, m.variant.Name, m.variant.Combo.Enabled)

	parts := []string{hud, "", board}
	if status := renderStatus(m.snap, m.ctrl.ReviveAvailable()); status != "" {
		parts = append(parts, "", status)
	}
	parts = append(parts, "", helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local play session and blocks
// until the user quits.
func Run(variant config.Variant, store *storage.Store, seed int64, logger *log.Logger, width, height int) error {
	model := NewGameModel(variant, store, seed, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
