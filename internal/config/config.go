// Package config provides YAML-based configuration loading for the game,
// environment overrides, and validation of user-supplied board sizes.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-connect4/internal/core"
)

// Connect4Config contains all configuration for a Connect Four session.
type Connect4Config struct {
	Board    BoardConfig    `yaml:"board"`
	Players  []PlayerConfig `yaml:"players"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines how one player is shown.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Glyph string `yaml:"glyph"`
}

// GameplayConfig defines presentation timing.
type GameplayConfig struct {
	AnnounceDelayMS int `yaml:"announce_delay_ms"`
	TickRate        int `yaml:"tick_rate"`
}

const (
	minTickRate = 1
	maxTickRate = 120
)

// AnnounceDelay returns the configured delay as a duration.
func (c Connect4Config) AnnounceDelay() time.Duration {
	return time.Duration(c.Gameplay.AnnounceDelayMS) * time.Millisecond
}

// Validate checks that the configuration can be used to start a game.
func (c Connect4Config) Validate() error {
	if err := checkBoardSize(c.Board.Width); err != nil {
		return fmt.Errorf("board.width: %w", err)
	}
	if err := checkBoardSize(c.Board.Height); err != nil {
		return fmt.Errorf("board.height: %w", err)
	}

	if len(c.Players) != 2 {
		return fmt.Errorf("players: expected 2 entries, got %d", len(c.Players))
	}
	var colors [2]core.Color
	for i, p := range c.Players {
		color, ok := core.ParseColor(p.Color)
		if !ok {
			return fmt.Errorf("players[%d].color: unknown color %q", i, p.Color)
		}
		if len([]rune(p.Glyph)) != 1 {
			return fmt.Errorf("players[%d].glyph: must be a single character, got %q", i, p.Glyph)
		}
		colors[i] = color
	}
	if colors[0] == colors[1] {
		return fmt.Errorf("players: both players use color %q", c.Players[0].Color)
	}

	if c.Gameplay.AnnounceDelayMS < 0 {
		return fmt.Errorf("gameplay.announce_delay_ms: must not be negative")
	}
	if c.Gameplay.TickRate < minTickRate || c.Gameplay.TickRate > maxTickRate {
		return fmt.Errorf("gameplay.tick_rate: must be between %d and %d", minTickRate, maxTickRate)
	}
	return nil
}

// RuntimeConfig converts the configuration into what games receive at Reset.
// The configuration must have passed Validate.
func (c Connect4Config) RuntimeConfig(screenW, screenH int) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:       screenW,
		ScreenH:       screenH,
		TickRate:      c.Gameplay.TickRate,
		BoardW:        c.Board.Width,
		BoardH:        c.Board.Height,
		AnnounceDelay: c.AnnounceDelay(),
	}
	for i, p := range c.Players {
		if i >= len(rc.Players) {
			break
		}
		color, _ := core.ParseColor(p.Color)
		rc.Players[i] = core.PlayerStyle{
			Name:  p.Name,
			Color: color,
			Glyph: []rune(p.Glyph)[0],
		}
	}
	return rc
}
