package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvWidth         = "CONNECT4_WIDTH"
	EnvHeight        = "CONNECT4_HEIGHT"
	EnvAnnounceDelay = "CONNECT4_ANNOUNCE_DELAY_MS"
	EnvLogLevel      = "CONNECT4_LOG_LEVEL"
)

const configFileName = "config.yaml"

// Load loads the Connect Four configuration, applies environment overrides
// and validates the result.
// Search order: customPath -> ~/.connect4/config.yaml -> ./configs/connect4.yaml -> embedded default
func Load(customPath string) (Connect4Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(customPath string) (Connect4Config, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultConnect4Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			next := cfg
			if err := yaml.Unmarshal(data, &next); err == nil {
				return next, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "connect4.yaml")); err == nil {
		next := cfg
		if err := yaml.Unmarshal(data, &next); err == nil {
			return next, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConnect4YAML, &cfg); err != nil {
		return DefaultConnect4Config(), nil
	}
	return cfg, nil
}

// LoadDotEnv reads KEY=VALUE files into the process environment.
// Variables that are already set win, and missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with values found through getenv.
// Board sizes go through ParseBoardSize, so malformed values are errors.
func ApplyEnv(cfg *Connect4Config, getenv func(string) string) error {
	if raw := getenv(EnvWidth); raw != "" {
		w, err := ParseBoardSize(raw, cfg.Board.Width)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		cfg.Board.Width = w
	}
	if raw := getenv(EnvHeight); raw != "" {
		h, err := ParseBoardSize(raw, cfg.Board.Height)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		cfg.Board.Height = h
	}
	if raw := strings.TrimSpace(getenv(EnvAnnounceDelay)); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			return fmt.Errorf("%s: %q is not a non-negative number of milliseconds", EnvAnnounceDelay, raw)
		}
		cfg.Gameplay.AnnounceDelayMS = ms
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Connect4Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserDir returns ~/.connect4, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connect4")
}

// UserPath returns the path to a file in the user directory, or empty if
// home is unavailable.
func UserPath(name string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
