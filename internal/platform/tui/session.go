package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// SessionModel manages the full session flow: setup -> game -> setup.
// This is the top-level model used by `connect4 setup` and SSH sessions.
type SessionModel struct {
	gameID   string
	defaults BoardSize
	runtime  core.RuntimeConfig
	logger   *log.Logger

	setup    SetupModel
	game     *Model
	lastSize *BoardSize
	err      error
	quitting bool
}

// NewSessionModel creates a session for the registered game gameID,
// starting at the board-size form.
func NewSessionModel(gameID string, cfg config.Connect4Config, screenW, screenH int, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	defaults := BoardSize{Width: cfg.Board.Width, Height: cfg.Board.Height}
	setup := NewSetupModel(defaults)
	setup.SetWindowSize(screenW, screenH)

	return SessionModel{
		gameID:   gameID,
		defaults: defaults,
		runtime:  cfg.RuntimeConfig(screenW, screenH),
		logger:   logger,
		setup:    setup,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates while the form is shown.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if sm, ok := next.(SetupModel); ok {
		m.setup = sm
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	size, ok := m.setup.Done()
	if !ok {
		return m, cmd
	}

	game, err := registry.Create(m.gameID)
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	rc := m.runtime
	rc.BoardW = size.Width
	rc.BoardH = size.Height
	gm := NewModel(game, rc, WithBack(), WithLogger(m.logger))
	m.game = &gm
	m.lastSize = &size
	m.logger.Info("game started", "width", size.Width, "height", size.Height)

	return m, m.game.Init()
}

// updateGame handles updates while a game runs.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToSetup() {
		m.game = nil
		m.setup = NewSetupModel(m.defaults)
		if m.lastSize != nil {
			m.setup.Prefill(*m.lastSize)
		}
		m.setup.SetWindowSize(m.runtime.ScreenW, m.runtime.ScreenH)
		// The form ignores the pending tick, which ends the game loop.
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.setup.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession starts a full-screen program with the setup form and game loop.
func RunSession(gameID string, cfg config.Connect4Config, screenW, screenH int, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, cfg, screenW, screenH, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
