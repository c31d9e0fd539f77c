package core

import "time"

// PlayerStyle describes how one player's pieces look.
type PlayerStyle struct {
	Name  string
	Color Color
	Glyph rune
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second

	BoardW int // Board columns
	BoardH int // Board rows

	// AnnounceDelay is how long the final position stays on screen before
	// the result banner appears.
	AnnounceDelay time.Duration

	Players [2]PlayerStyle
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		TickRate:      30,
		BoardW:        7,
		BoardH:        6,
		AnnounceDelay: 100 * time.Millisecond,
		Players: [2]PlayerStyle{
			{Name: "Player 1", Color: ColorRed, Glyph: '●'},
			{Name: "Player 2", Color: ColorYellow, Glyph: '●'},
		},
	}
}

// Ticks converts a duration into a whole number of ticks at the configured
// rate, rounding up so that any positive delay lasts at least one tick.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	if d <= 0 || c.TickRate <= 0 {
		return 0
	}
	scaled := d * time.Duration(c.TickRate)
	return int((scaled + time.Second - 1) / time.Second)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Pieces played so far
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
