package connect4

import "github.com/vovakirdan/tui-connect4/internal/games/connect4/engine"

// Snapshot captures the complete game state for tests and replay checks.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Board     [][]engine.Cell
	Cursor    int
	Current   engine.Player
	Status    engine.Status
	Winner    engine.Player
	Moves     int
	Last      engine.Outcome // the move that ended the game, zero while playing
	Paused    bool
	Announced bool
	Hint      string
}

// Snapshot returns the current game state. The board is a copy.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Tick: g.tick}
	}
	return Snapshot{
		Tick:      g.tick,
		Width:     g.state.Width(),
		Height:    g.state.Height(),
		Board:     g.state.Grid(),
		Cursor:    g.cursor,
		Current:   g.state.CurrentPlayer(),
		Status:    g.state.Status(),
		Winner:    g.state.Winner(),
		Moves:     g.state.Moves(),
		Last:      g.last,
		Paused:    g.paused,
		Announced: g.announced,
		Hint:      g.hint,
	}
}
