package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
	"github.com/vovakirdan/tui-connect4/internal/platform/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Choose the board size, then play",
	Long: `Show a form for the board width and height before the game starts.
Leave a field blank to use the configured size. B or Esc during a game
returns to the form.

Examples:
  connect4 setup
  connect4 setup --width 8   # prefill the default width`,
	Args: cobra.NoArgs,
	Run:  runSetup,
}

func init() {
	addSizeFlags(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	if err := tui.RunSession(connect4.ID, cfg, width, height, logger); err != nil {
		fail("running game: %v", err)
	}
}
