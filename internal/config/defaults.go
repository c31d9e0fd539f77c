package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the built-in configuration: the classic
// 7x6 board, red against yellow.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Width:  DefaultBoardWidth,
			Height: DefaultBoardHeight,
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Color: "red", Glyph: "●"},
			{Name: "Player 2", Color: "yellow", Glyph: "●"},
		},
		Gameplay: GameplayConfig{
			AnnounceDelayMS: 100,
			TickRate:        30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConnect4YAML
}
