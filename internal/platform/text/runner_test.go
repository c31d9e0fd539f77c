package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-connect4/internal/games/connect4/engine"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", []int{}},
		{"3", []int{3}},
		{"3 0 3,0", []int{3, 0, 3, 0}},
		{" 1,,2 ,\t3\n", []int{1, 2, 3}},
		{"-1 9", []int{-1, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMoves(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseMoves("3 x 4")
	assert.ErrorContains(t, err, `"x"`)
}

func TestPlayVerticalWin(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, 7, 6)

	status, err := r.Play([]int{3, 0, 3, 0, 3, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, engine.WonBy1, status)

	text := out.String()
	assert.Equal(t, 7, strings.Count(text, "drops in column"))
	assert.True(t, strings.HasSuffix(text, "Player 1 won after 7 moves\n"))
}

func TestPlayReportsFullColumn(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, 7, 6)

	status, err := r.Play([]int{0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, engine.InProgress, status)
	assert.Contains(t, out.String(), "Column 0 is full, player 1 moves again")
	assert.Contains(t, out.String(), "In progress after 6 moves, player 1 to move")
}

func TestPlayStopsAtInvalidColumn(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, 7, 6)

	_, err := r.Play([]int{3, 7, 2})
	require.ErrorIs(t, err, engine.ErrInvalidColumn)
	assert.Contains(t, err.Error(), "move 2 (column 7)")
	assert.Equal(t, 1, r.State().Moves(), "moves after the error are not played")
}

func TestPlayAfterGameOverIsAnError(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, 7, 6)

	status, err := r.Play([]int{3, 0, 3, 0, 3, 0, 3, 1})
	require.ErrorIs(t, err, engine.ErrGameAlreadyOver)
	assert.Equal(t, engine.WonBy1, status)
	assert.Contains(t, err.Error(), "move 8")
}

func TestPlayTie(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(&out, 3, 3)

	status, err := r.Play([]int{0, 0, 0, 1, 1, 1, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, engine.Tied, status)
	assert.True(t, strings.HasSuffix(out.String(), "It's a tie after 9 moves\n"))
}

func TestFormatBoard(t *testing.T) {
	r := NewRunner(&bytes.Buffer{}, 4, 3)
	_, err := r.Play([]int{1, 1, 2})
	require.NoError(t, err)

	want := strings.Join([]string{
		". . . .",
		". Y . .",
		". R R .",
		"0 1 2 3",
	}, "\n")
	assert.Equal(t, want, FormatBoard(r.State()))
}
