package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the config file,
CONNECT4_* environment variables and --width/--height are applied.

Use --defaults to print the built-in file instead, as a starting point for
~/.connect4/config.yaml.

Examples:
  connect4 config
  connect4 config --defaults > ~/.connect4/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addSizeFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
