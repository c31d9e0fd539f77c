package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

const stubID = "tui-stub"

// stubGame records what the model feeds it.
type stubGame struct {
	resets  int
	last    core.RuntimeConfig
	steps   []core.InputFrame
	over    bool
	renders int
}

func init() {
	registry.Register(stubID, func() registry.Game { return &stubGame{} })
}

func (g *stubGame) ID() string    { return stubID }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.last = cfg
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	g.renders++
	dst.DrawText(0, 0, "stub board")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{GameOver: g.over}
}

// ColumnAt treats rows 2-8 as the board.
func (g *stubGame) ColumnAt(x, y int) (int, bool) {
	if x < 0 || x >= 21 || y < 2 || y > 8 {
		return 0, false
	}
	return x / 3, true
}

func (g *stubGame) lastStep(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.steps) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.steps[len(g.steps)-1]
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func newTestModel(opts ...Option) (Model, *stubGame) {
	g := &stubGame{}
	m := NewModel(g, core.DefaultConfig(), opts...)
	m.Init()
	return m, g
}

func TestInitResetsGame(t *testing.T) {
	_, g := newTestModel()
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.last.BoardW != 7 || g.last.BoardH != 6 {
		t.Errorf("board = %dx%d, want 7x6", g.last.BoardW, g.last.BoardH)
	}
}

func TestKeysReachGameOnTick(t *testing.T) {
	m, g := newTestModel()

	m = update(t, m, runeKey('5'))
	m = update(t, m, TickMsg{})

	in := g.lastStep(t)
	if !in.Has(core.ActionSelect) || in.Column != 4 {
		t.Errorf("step input = %+v, want select column 4", in)
	}

	update(t, m, TickMsg{})
	if g.lastStep(t).Has(core.ActionSelect) {
		t.Error("input not cleared after tick")
	}
}

func TestMouseClickSelectsColumn(t *testing.T) {
	m, g := newTestModel()

	m = update(t, m, tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	in := g.lastStep(t)
	if !in.Has(core.ActionSelect) || in.Column != 2 {
		t.Errorf("step input = %+v, want select column 2", in)
	}

	m = update(t, m, tea.MouseMsg{X: 40, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 4, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 4, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})
	if g.lastStep(t).Has(core.ActionSelect) {
		t.Error("click outside the board, above it, or a release should not select")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel()
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model not quitting")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestBackRequiresOption(t *testing.T) {
	m, _ := newTestModel()
	m = update(t, m, runeKey('b'))
	if m.BackToSetup() {
		t.Error("back honored without WithBack")
	}

	m, _ = newTestModel(WithBack())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToSetup() {
		t.Error("back ignored with WithBack")
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m, g := newTestModel()

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("restart during play reset the game (resets = %d)", g.resets)
	}

	g.over = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resize reset the game (resets = %d)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpHeight {
		t.Errorf("screen = %dx%d, want 100x%d", m.screen.Width(), m.screen.Height(), 40-helpHeight)
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	m, g := newTestModel()
	view := m.View()

	if g.renders == 0 {
		t.Error("game not rendered")
	}
	if !strings.Contains(view, "stub board") {
		t.Error("view missing game output")
	}
	if !strings.Contains(view, "drop") || !strings.Contains(view, "quit") {
		t.Error("view missing help line")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '●', core.ColorRed)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "●") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func typeText(t *testing.T, m SetupModel, text string) SetupModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(SetupModel)
}

func press(t *testing.T, m SetupModel, k tea.KeyType) SetupModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(SetupModel)
}

func TestSetupBlankUsesDefaults(t *testing.T) {
	m := NewSetupModel(BoardSize{Width: 7, Height: 6})
	m = press(t, m, tea.KeyEnter)
	m = press(t, m, tea.KeyEnter)

	size, ok := m.Done()
	if !ok {
		t.Fatalf("form not done, err = %q", m.Err())
	}
	if size != (BoardSize{Width: 7, Height: 6}) {
		t.Errorf("size = %+v, want 7x6", size)
	}
}

func TestSetupTypedValues(t *testing.T) {
	m := NewSetupModel(BoardSize{Width: 7, Height: 6})
	m = typeText(t, m, "9")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "12")
	m = press(t, m, tea.KeyEnter)

	size, ok := m.Done()
	if !ok || size != (BoardSize{Width: 9, Height: 12}) {
		t.Errorf("Done() = %+v, %v; want 9x12", size, ok)
	}
}

func TestSetupRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		width  string
		height string
		field  string
	}{
		{"not a number", "x", "", "Width"},
		{"zero", "0", "", "Width"},
		{"too tall", "7", "50", "Height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewSetupModel(BoardSize{Width: 7, Height: 6})
			m = typeText(t, m, tt.width)
			m = press(t, m, tea.KeyEnter)
			if tt.height != "" {
				m = typeText(t, m, tt.height)
			}
			m = press(t, m, tea.KeyEnter)

			if _, ok := m.Done(); ok {
				t.Fatal("invalid size accepted")
			}
			if !strings.HasPrefix(m.Err(), tt.field) {
				t.Errorf("err = %q, want prefix %q", m.Err(), tt.field)
			}
			if !strings.Contains(m.View(), tt.field+":") {
				t.Error("error not shown in the form")
			}
		})
	}
}

func TestSetupEscQuits(t *testing.T) {
	m := NewSetupModel(BoardSize{Width: 7, Height: 6})
	m = press(t, m, tea.KeyEsc)
	if !m.IsQuitting() {
		t.Error("esc did not quit")
	}
}

func TestSessionFlow(t *testing.T) {
	cfg := config.DefaultConnect4Config()
	s := NewSessionModel(stubID, cfg, 80, 24, nil)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	step(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	step(tea.KeyMsg{Type: tea.KeyEnter})

	if !s.InGame() {
		t.Fatalf("session did not start the game, form error %q", s.setup.Err())
	}
	g := s.game.game.(*stubGame)
	if g.last.BoardW != 5 || g.last.BoardH != 4 {
		t.Errorf("game board = %dx%d, want 5x4", g.last.BoardW, g.last.BoardH)
	}

	step(runeKey('b'))
	if s.InGame() {
		t.Fatal("back did not return to the form")
	}
	if got := s.setup.inputs[fieldWidth].Value(); got != "5" {
		t.Errorf("width field = %q, want last size 5", got)
	}

	step(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !s.quitting {
		t.Error("ctrl+c in the form did not end the session")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	s := NewSessionModel("no-such-game", config.DefaultConnect4Config(), 80, 24, nil)
	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.(SessionModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	if next.(SessionModel).Err() == nil {
		t.Error("expected an error for an unregistered game")
	}
}
