// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 play              - Play on the configured board
//	connect4 setup             - Pick the board size, then play
//	connect4 serve             - Start SSH server for remote play
//	connect4 script --moves .. - Play scripted moves and print the boards
//	connect4 config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.connect4/config.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Where full-screen commands write logs
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Board size flags, shared by the commands that start games.
	flagWidth  string
	flagHeight string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four - two players, one terminal",
	Long: `Connect Four for the terminal. Two players take turns dropping pieces
into the columns of a grid; the first to line up four in a row, column or
diagonal wins.

Available commands:
  play     - Play on the configured board
  setup    - Choose the board size first
  serve    - Start SSH server for remote play
  script   - Play a list of moves without a UI
  config   - Print the effective configuration

Examples:
  connect4 play
  connect4 play --width 9 --height 7
  connect4 setup
  connect4 serve --ssh :2222
  connect4 script --moves "3 0 3 0 3 0 3"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(configCmd)
}

// addSizeFlags registers --width and --height on cmd.
func addSizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagWidth, "width", "", fmt.Sprintf("Board width (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
	cmd.Flags().StringVar(&flagHeight, "height", "", fmt.Sprintf("Board height (%d-%d)", config.MinBoardSize, config.MaxBoardSize))
}

// setupRuntime loads .env and builds the logger before any command runs.
func setupRuntime(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	level := flagLogLevel
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	// Full-screen commands own the terminal, so logs go to a file or nowhere.
	var out io.Writer = os.Stderr
	if fullScreen(cmd) {
		out = io.Discard
	}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          connect4.ID,
	})
	log.SetDefault(logger)
	return nil
}

func fullScreen(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == setupCmd
}

// loadGameConfig loads the config file and applies --width and --height.
func loadGameConfig() (config.Connect4Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	w, err := config.ParseBoardSize(flagWidth, cfg.Board.Width)
	if err != nil {
		return cfg, fmt.Errorf("--width: %w", err)
	}
	h, err := config.ParseBoardSize(flagHeight, cfg.Board.Height)
	if err != nil {
		return cfg, fmt.Errorf("--height: %w", err)
	}
	cfg.Board.Width = w
	cfg.Board.Height = h
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints err the way every command reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(1)
}
