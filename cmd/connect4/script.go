package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/platform/text"
)

var flagMoves string

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Play a list of moves and print each board",
	Long: `Play 0-based column numbers in order, alternating players, and print
the board after every accepted move followed by the result.

Moves come from --moves, or from standard input when --moves is not set.
The command fails on an out-of-range column or on moves sent after the
game has ended.

Examples:
  connect4 script --moves "3 0 3 0 3 0 3"
  echo "3,3,4,4,5,5,6" | connect4 script --width 8`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	addSizeFlags(scriptCmd)
	scriptCmd.Flags().StringVar(&flagMoves, "moves", "", "Columns to play, separated by spaces or commas")
}

func runScript(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	raw := flagMoves
	if !cmd.Flags().Changed("moves") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read moves: %w", err)
		}
		raw = string(data)
	}

	moves, err := text.ParseMoves(raw)
	if err != nil {
		return err
	}

	runner := text.NewRunner(cmd.OutOrStdout(), cfg.Board.Width, cfg.Board.Height)
	status, err := runner.Play(moves)
	logger.Debug("script finished", "moves", len(moves), "status", status)
	return err
}
