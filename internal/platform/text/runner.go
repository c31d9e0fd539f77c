// Package text plays Connect Four without a terminal UI: a scripted list of
// columns goes in, ASCII boards and a result line come out. It is meant for
// pipes, scripts and CI.
package text

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4/engine"
)

// Cell glyphs in ASCII output.
const (
	glyphEmpty   = '.'
	glyphPlayer1 = 'R'
	glyphPlayer2 = 'Y'
)

// Runner feeds moves to an engine and reports each step to a writer.
type Runner struct {
	out   io.Writer
	state *engine.State
}

// NewRunner creates a runner for a new width x height game.
func NewRunner(out io.Writer, width, height int) *Runner {
	return &Runner{out: out, state: engine.New(width, height)}
}

// State returns the engine being played.
func (r *Runner) State() *engine.State {
	return r.state
}

// Play drops a piece for each column in turn. It stops at the first engine
// error, including a move sent after the game ended, and returns the status
// reached.
func (r *Runner) Play(columns []int) (engine.Status, error) {
	for i, col := range columns {
		out, err := r.state.Drop(col)
		if err != nil {
			return r.state.Status(), fmt.Errorf("move %d (column %d): %w", i+1, col, err)
		}

		if out.Kind == engine.ColumnFull {
			if _, err := fmt.Fprintf(r.out, "Column %d is full, player %s moves again\n", col, out.Player); err != nil {
				return r.state.Status(), err
			}
			continue
		}

		if _, err := fmt.Fprintf(r.out, "Player %s drops in column %d\n%s\n", out.Player, col, FormatBoard(r.state)); err != nil {
			return r.state.Status(), err
		}
	}

	_, err := fmt.Fprintln(r.out, Result(r.state))
	return r.state.Status(), err
}

// Result describes the state of the game in one line.
func Result(s *engine.State) string {
	switch s.Status() {
	case engine.WonBy1, engine.WonBy2:
		return fmt.Sprintf("Player %s won after %d moves", s.Winner(), s.Moves())
	case engine.Tied:
		return fmt.Sprintf("It's a tie after %d moves", s.Moves())
	default:
		return fmt.Sprintf("In progress after %d moves, player %s to move", s.Moves(), s.CurrentPlayer())
	}
}

// FormatBoard draws the grid top row first, one character per cell
// separated by spaces, followed by a line of column indexes.
func FormatBoard(s *engine.State) string {
	var b strings.Builder
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(glyph(s.CellAt(row, col)))
		}
		b.WriteByte('\n')
	}
	for col := 0; col < s.Width(); col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		// Keep one character per column; wide boards show the last digit.
		b.WriteString(strconv.Itoa(col % 10))
	}
	return b.String()
}

func glyph(c engine.Cell) rune {
	switch c {
	case engine.Player1:
		return glyphPlayer1
	case engine.Player2:
		return glyphPlayer2
	default:
		return glyphEmpty
	}
}

// ParseMoves reads 0-based column numbers separated by spaces or commas,
// for example "3 0 3,0". Range checks are left to the engine.
func ParseMoves(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	moves := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("move %q is not a column number", f)
		}
		moves = append(moves, n)
	}
	return moves, nil
}
