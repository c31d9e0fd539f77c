package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
	"github.com/vovakirdan/tui-connect4/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Connect Four",
	Long: `Start a two-player game on one terminal.

Controls:
  ←/→, H/L, A/D    - Move the column cursor
  Space/Enter/↓    - Drop a piece at the cursor
  1-9              - Drop into that column
  Mouse click      - Drop into the clicked column
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  connect4 play
  connect4 play --width 9 --height 7
  connect4 play --config ./my-connect4.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addSizeFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	game, err := registry.Create(connect4.ID)
	if err != nil {
		fail("creating game: %v", err)
	}

	width, height := terminalSize()
	logger.Info("starting game", "width", cfg.Board.Width, "height", cfg.Board.Height)

	if err := tui.Run(game, cfg.RuntimeConfig(width, height), logger); err != nil {
		fail("running game: %v", err)
	}
}
