// Package connect4 adapts the Connect Four engine to the game platform:
// it turns input frames into drops, keeps a column cursor, and draws the
// board into a core.Screen.
package connect4

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-connect4/internal/core"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4/engine"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "connect4"

// Game implements registry.Game for Connect Four.
type Game struct {
	cfg    core.RuntimeConfig
	state  *engine.State
	logger *log.Logger
	tick   uint64

	cursor int
	paused bool
	hint   string // transient status-line message, cleared by the next move

	last       engine.Outcome
	announceIn int  // ticks left before the result banner shows
	announced  bool // result banner visible

	// Board placement from the last Render, used to map mouse clicks.
	cellArea core.Rect
	rendered bool
}

// New creates a game that logs through the default charm logger.
func New() *Game {
	return &Game{logger: log.Default().WithPrefix(ID)}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// SetLogger replaces the logger used for move events.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Connect Four" }

// Reset starts a new game on a cfg.BoardW x cfg.BoardH board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.state = engine.New(cfg.BoardW, cfg.BoardH)
	g.tick = 0
	g.cursor = (g.state.Width() - 1) / 2
	g.paused = false
	g.hint = ""
	g.last = engine.Outcome{}
	g.announceIn = 0
	g.announced = false
	g.rendered = false

	g.logger.Debug("new game", "width", g.state.Width(), "height", g.state.Height())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.state == nil {
		g.Reset(core.DefaultConfig())
	}

	if g.state.Status().Terminal() {
		if !g.announced {
			g.announceIn--
			if g.announceIn <= 0 {
				g.announce()
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	width := g.state.Width()
	if in.Has(core.ActionLeft) {
		g.cursor = core.Wrap(g.cursor-1, width)
	}
	if in.Has(core.ActionRight) {
		g.cursor = core.Wrap(g.cursor+1, width)
	}

	switch {
	case in.Has(core.ActionSelect):
		if g.state.ValidColumn(in.Column) {
			g.cursor = in.Column
		}
		g.drop(in.Column)
	case in.Has(core.ActionDrop):
		g.drop(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// drop plays the current player's piece into column and reacts to the outcome.
func (g *Game) drop(column int) {
	out, err := g.state.Drop(column)
	if err != nil {
		if errors.Is(err, engine.ErrGameAlreadyOver) {
			return
		}
		g.logger.Warn("move rejected", "player", out.Player, "column", column, "err", err)
		return
	}

	switch out.Kind {
	case engine.ColumnFull:
		g.hint = fmt.Sprintf("Column %d is full", column+1)
		g.logger.Debug("column full", "player", out.Player, "column", column)
		return
	case engine.Continue:
		g.hint = ""
		g.logger.Debug("move", "player", out.Player, "column", out.Column, "row", out.Row, "outcome", out.Kind)
		return
	}

	// Win or tie: keep the final piece on screen before the banner.
	g.hint = ""
	g.last = out
	g.announceIn = g.cfg.Ticks(g.cfg.AnnounceDelay)
	if g.announceIn <= 0 {
		g.announce()
	}
	g.logger.Info("game over", "player", out.Player, "column", out.Column, "row", out.Row,
		"outcome", out.Kind, "moves", g.state.Moves())
}

func (g *Game) announce() {
	g.announced = true
	g.announceIn = 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Moves:    g.state.Moves(),
		GameOver: g.state.Status().Terminal(),
		Paused:   g.paused,
	}
}

// Banner returns the result message once it is due, or "".
func (g *Game) Banner() string {
	if g.state == nil || !g.announced {
		return ""
	}
	if w := g.state.Winner(); w != engine.NoPlayer {
		return fmt.Sprintf("%s won!", g.playerStyle(w).Name)
	}
	return "It's a tie!"
}

// Hint returns the transient status message, such as a full-column notice.
func (g *Game) Hint() string { return g.hint }

// Cursor returns the column the next Drop will use.
func (g *Game) Cursor() int { return g.cursor }

// Engine returns a copy of the engine state.
func (g *Game) Engine() *engine.State {
	if g.state == nil {
		return nil
	}
	return g.state.Clone()
}

// ColumnAt maps a screen position from the last Render to a board column.
// Clicks count on the hover row and on the rows holding pieces.
func (g *Game) ColumnAt(screenX, screenY int) (int, bool) {
	if g.state == nil || !g.rendered {
		return 0, false
	}
	// The hover row sits above the frame's top edge.
	target := core.NewRect(g.cellArea.X, g.cellArea.Y-2, g.cellArea.W, g.cellArea.H+2)
	if !target.Contains(screenX, screenY) || screenY == g.cellArea.Y-1 {
		return 0, false
	}
	return (screenX - g.cellArea.X) / cellWidth, true
}

func (g *Game) playerStyle(p engine.Player) core.PlayerStyle {
	if p == engine.Player2 {
		return g.cfg.Players[1]
	}
	return g.cfg.Players[0]
}
