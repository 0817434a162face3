package engine

// windowLines returns the eight candidate lines (3 rows, 3 columns, 2
// diagonals) of the active window as absolute board indices, relative to
// the window's current top-left corner (ax, ay). A line that was complete
// before a shift moved it outside the window is never among these, which
// is exactly what keeps window-only scoring correct.
func windowLines(ax, ay int) [8][3]int {
	cell := func(dr, dc int) int { return index(ay+dr, ax+dc) }
	return [8][3]int{
		{cell(0, 0), cell(0, 1), cell(0, 2)},
		{cell(1, 0), cell(1, 1), cell(1, 2)},
		{cell(2, 0), cell(2, 1), cell(2, 2)},
		{cell(0, 0), cell(1, 0), cell(2, 0)},
		{cell(0, 1), cell(1, 1), cell(2, 1)},
		{cell(0, 2), cell(1, 2), cell(2, 2)},
		{cell(0, 0), cell(1, 1), cell(2, 2)},
		{cell(0, 2), cell(1, 1), cell(2, 0)},
	}
}

// Winner reports the side holding a completed line inside the active
// window, if any. Lines outside the window never count, even if they were
// completed before the window last shifted.
func Winner(s State) (Player, bool) {
	for _, line := range windowLines(s.AX, s.AY) {
		a, b, c := s.Board[line[0]], s.Board[line[1]], s.Board[line[2]]
		if a == CellEmpty || a != b || b != c {
			continue
		}
		if a == CellX {
			return PlayerX, true
		}
		return PlayerO, true
	}
	return 0, false
}

// IsDraw reports whether the board is full with no winning line.
func IsDraw(s State) bool {
	if s.CountEmpty() != 0 {
		return false
	}
	_, won := Winner(s)
	return !won
}

// IsTerminal reports whether s is a win for either side or a draw.
func IsTerminal(s State) bool {
	if _, won := Winner(s); won {
		return true
	}
	return IsDraw(s)
}
