// Package engine implements the Connect Four rules: the grid, gravity, move
// legality, win and tie detection, and turn order.
// It has no dependencies outside the standard library and never touches a
// display; adapters translate its outcomes into user-facing effects.
package engine

// Cell is the content of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Red        // player 1
	Yellow     // player 2
)

// Player identifies whose turn it is. Only Player1 and Player2 are valid.
type Player = Cell

const (
	NoPlayer Player = Empty
	Player1  Player = Red
	Player2  Player = Yellow
)

// Opponent returns the other player.
func (c Cell) Opponent() Player {
	if c == Player1 {
		return Player2
	}
	return Player1
}

// String returns "1" / "2" for players and "empty" otherwise.
func (c Cell) String() string {
	switch c {
	case Red:
		return "1"
	case Yellow:
		return "2"
	default:
		return "empty"
	}
}

// Status is the lifecycle state of a game.
type Status int

const (
	InProgress Status = iota
	WonBy1
	WonBy2
	Tied
)

// Terminal returns true once no further moves are accepted.
func (s Status) Terminal() bool {
	return s != InProgress
}

// Winner returns the winning player, or NoPlayer.
func (s Status) Winner() Player {
	switch s {
	case WonBy1:
		return Player1
	case WonBy2:
		return Player2
	default:
		return NoPlayer
	}
}

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case WonBy1:
		return "won-by-1"
	case WonBy2:
		return "won-by-2"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

func wonBy(p Player) Status {
	if p == Player2 {
		return WonBy2
	}
	return WonBy1
}

// Error is a rules violation reported by the engine.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn   Error = "invalid column"
	ErrGameAlreadyOver Error = "game already over"
)

// OutcomeKind classifies the result of a drop.
type OutcomeKind int

const (
	Continue OutcomeKind = iota
	ColumnFull
	Win
	Tie
	Rejected // the drop returned an error
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case ColumnFull:
		return "column-full"
	case Win:
		return "win"
	case Tie:
		return "tie"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// NoRow is returned as a landing row when the column has no empty cell.
const NoRow = -1

// Outcome describes what a drop did.
type Outcome struct {
	Kind   OutcomeKind
	Player Player // the player who moved (or tried to)
	Row    int    // landing row, NoRow when the column was full
	Column int
}

// State is one game: the grid plus turn and status.
// It is not safe for concurrent use; callers serialize access.
type State struct {
	width   int
	height  int
	grid    [][]Cell // grid[row][column], row 0 is the top
	current Player
	status  Status
	moves   int
}

// New creates an empty width x height game with player 1 to move.
// Sizes below 1 are raised to 1; boards narrower and shorter than
// WinLength are legal but can only end in a tie.
func New(width, height int) *State {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &State{width: width, height: height}
	s.grid = make([][]Cell, height)
	for row := range s.grid {
		s.grid[row] = make([]Cell, width)
	}
	s.Reset()
	return s
}

// Reset clears the grid and restores the initial turn and status.
func (s *State) Reset() {
	for row := range s.grid {
		for col := range s.grid[row] {
			s.grid[row][col] = Empty
		}
	}
	s.current = Player1
	s.status = InProgress
	s.moves = 0
}

// Width returns the number of columns.
func (s *State) Width() int { return s.width }

// Height returns the number of rows.
func (s *State) Height() int { return s.height }

// CurrentPlayer returns the player to move. After a win it is still the
// winner, since the turn does not pass.
func (s *State) CurrentPlayer() Player { return s.current }

// Status returns where the game is in its lifecycle.
func (s *State) Status() Status { return s.status }

// Winner returns the winning player, or NoPlayer while in progress or tied.
func (s *State) Winner() Player { return s.status.Winner() }

// Moves returns the number of pieces on the board.
func (s *State) Moves() int { return s.moves }

// CellAt returns the cell at (row, column), or Empty when out of bounds.
func (s *State) CellAt(row, column int) Cell {
	if !s.inBounds(row, column) {
		return Empty
	}
	return s.grid[row][column]
}

// Grid returns a copy of the board, indexed [row][column].
func (s *State) Grid() [][]Cell {
	out := make([][]Cell, s.height)
	for row := range s.grid {
		out[row] = make([]Cell, s.width)
		copy(out[row], s.grid[row])
	}
	return out
}

// Clone returns an independent copy of the game.
func (s *State) Clone() *State {
	c := *s
	c.grid = s.Grid()
	return &c
}

func (s *State) inBounds(row, column int) bool {
	return row >= 0 && row < s.height && column >= 0 && column < s.width
}

// ValidColumn reports whether column lies on the board.
func (s *State) ValidColumn(column int) bool {
	return column >= 0 && column < s.width
}

// ColumnFull reports whether the top cell of column is occupied.
// Out-of-range columns are reported as full.
func (s *State) ColumnFull(column int) bool {
	if !s.ValidColumn(column) {
		return true
	}
	return s.grid[0][column] != Empty
}

// ValidColumns lists the columns that still accept a piece.
func (s *State) ValidColumns() []int {
	cols := make([]int, 0, s.width)
	for col := 0; col < s.width; col++ {
		if !s.ColumnFull(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// Full reports whether every cell is occupied.
func (s *State) Full() bool {
	return s.moves >= s.width*s.height
}

// LandingRow returns the row a piece dropped in column would occupy,
// scanning upward from the bottom. It returns NoRow if the column is full.
func (s *State) LandingRow(column int) (int, error) {
	if !s.ValidColumn(column) {
		return NoRow, ErrInvalidColumn
	}
	for row := s.height - 1; row >= 0; row-- {
		if s.grid[row][column] == Empty {
			return row, nil
		}
	}
	return NoRow, nil
}

// Drop plays the current player's piece into column.
//
// A full column yields a ColumnFull outcome and leaves the game untouched.
// A winning move ends the game without passing the turn. When an error is
// returned nothing was changed and the outcome kind is Rejected.
func (s *State) Drop(column int) (Outcome, error) {
	mover := s.current
	rejected := Outcome{Kind: Rejected, Player: mover, Row: NoRow, Column: column}
	if s.status.Terminal() {
		return rejected, ErrGameAlreadyOver
	}
	row, err := s.LandingRow(column)
	if err != nil {
		return rejected, err
	}
	if row == NoRow {
		rejected.Kind = ColumnFull
		return rejected, nil
	}

	s.grid[row][column] = mover
	s.moves++
	out := Outcome{Player: mover, Row: row, Column: column}

	if s.winsThrough(row, column) {
		s.status = wonBy(mover)
		out.Kind = Win
		return out, nil
	}
	if s.Full() {
		s.status = Tied
		out.Kind = Tie
		return out, nil
	}

	s.current = mover.Opponent()
	out.Kind = Continue
	return out, nil
}
