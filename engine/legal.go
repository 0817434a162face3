package engine

// LegalActions returns every legal action for player p in state s, in a
// deterministic order: all placements, then all moves, then all shifts.
// Move-ordering (§4.5, ordering.go) re-sorts this list before the search
// consumes it; the order here only needs to be deterministic, not good.
func LegalActions(s State, p Player) []Action {
	actions := make([]Action, 0, 16)

	placements := s.Placements(p)

	if placements < 4 {
		for i := 0; i < BoardSize*BoardSize; i++ {
			if !InWindow(i, s.AX, s.AY) {
				continue
			}
			if s.Board[i] == CellEmpty {
				actions = append(actions, Place(i))
			}
		}
	}

	if placements >= 2 {
		own := p.Cell()
		for from := 0; from < BoardSize*BoardSize; from++ {
			if s.Board[from] != own {
				continue
			}
			for to := 0; to < BoardSize*BoardSize; to++ {
				if to == from {
					continue
				}
				if !InWindow(to, s.AX, s.AY) {
					continue
				}
				if s.Board[to] != CellEmpty {
					continue
				}
				actions = append(actions, MoveAction(from, to))
			}
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nax, nay := s.AX+dx, s.AY+dy
				if nax < 0 || nax > MaxWindowCorner || nay < 0 || nay > MaxWindowCorner {
					continue
				}
				actions = append(actions, Shift(dx, dy))
			}
		}
	}

	return actions
}
