package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Board size limits for user-supplied dimensions. The engine itself accepts
// any positive size; these bounds keep the board drawable in a terminal.
const (
	MinBoardSize = 1
	MaxBoardSize = 20

	DefaultBoardWidth  = 7
	DefaultBoardHeight = 6
)

// SizeError describes why a board dimension was rejected.
type SizeError string

func (e SizeError) Error() string {
	return string(e)
}

const (
	ErrSizeNotNumber  SizeError = "board size must be a whole number"
	ErrSizeOutOfRange SizeError = "board size out of range"
)

// ParseBoardSize turns raw user input into a board dimension.
// Blank input selects def. Anything that is not a whole number in
// [MinBoardSize, MaxBoardSize] is rejected rather than clamped.
func ParseBoardSize(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", raw, ErrSizeNotNumber)
	}
	if err := checkBoardSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkBoardSize(n int) error {
	if n < MinBoardSize || n > MaxBoardSize {
		return fmt.Errorf("%d not in [%d, %d]: %w", n, MinBoardSize, MaxBoardSize, ErrSizeOutOfRange)
	}
	return nil
}
