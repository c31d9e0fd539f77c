package engine

// WinLength is the number of aligned pieces needed to win.
const WinLength = 4

// directions are the four line orientations probed from an origin:
// horizontal, vertical, down-right and down-left, as (dRow, dCol).
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// CheckWin reports whether the current player has WinLength in a row
// anywhere on the board.
//
// Every cell is tried as the origin of a line in each direction. A line
// only counts when all of its cells are on the board and owned by the
// current player. Every possible line is anchored at its top-most, then
// left-most cell, so the scan needs no knowledge of the last move.
func (s *State) CheckWin() bool {
	return s.hasLine(s.current)
}

// HasLine is CheckWin for an arbitrary player.
func (s *State) HasLine(p Player) bool {
	if p != Player1 && p != Player2 {
		return false
	}
	return s.hasLine(p)
}

func (s *State) hasLine(p Player) bool {
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			for _, d := range directions {
				if s.lineFrom(row, col, d[0], d[1], p) {
					return true
				}
			}
		}
	}
	return false
}

// lineFrom checks the WinLength cells starting at (row, col) along (dr, dc).
func (s *State) lineFrom(row, col, dr, dc int, p Player) bool {
	for i := 0; i < WinLength; i++ {
		r, c := row+dr*i, col+dc*i
		if !s.inBounds(r, c) || s.grid[r][c] != p {
			return false
		}
	}
	return true
}

// winsThrough reports whether the piece at (row, col) is part of a line.
// It gives the same answer as CheckWin right after that piece was placed,
// since any new line must pass through the new piece.
func (s *State) winsThrough(row, col int) bool {
	p := s.grid[row][col]
	if p == Empty {
		return false
	}
	for _, d := range directions {
		count := 1 + s.run(row, col, d[0], d[1], p) + s.run(row, col, -d[0], -d[1], p)
		if count >= WinLength {
			return true
		}
	}
	return false
}

// run counts consecutive cells owned by p beyond (row, col) along (dr, dc).
func (s *State) run(row, col, dr, dc int, p Player) int {
	n := 0
	r, c := row+dr, col+dc
	for s.inBounds(r, c) && s.grid[r][c] == p {
		n++
		r += dr
		c += dc
	}
	return n
}

// WinningLine returns the cells of one winning line for p, top-most origin
// first, or nil when p has none. Adapters use it to highlight the result.
func (s *State) WinningLine(p Player) [][2]int {
	if p != Player1 && p != Player2 {
		return nil
	}
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			for _, d := range directions {
				if !s.lineFrom(row, col, d[0], d[1], p) {
					continue
				}
				line := make([][2]int, WinLength)
				for i := range line {
					line[i] = [2]int{row + d[0]*i, col + d[1]*i}
				}
				return line
			}
		}
	}
	return nil
}
