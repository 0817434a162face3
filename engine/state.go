package engine

// State is the immutable game-state value the search recurses over. It
// bundles the tuple spec'd as (board, ax, ay, placementsX, placementsO)
// together with the side to move, since every derivation (legal actions,
// application, termination) needs to know whose turn it is.
//
// States are value types: Board is a fixed array, so copying a State copies
// its board by value. Applying an action never mutates its receiver; it
// returns a new State. This keeps the public contract the source specifies
// ("apply returns a new logical state") without needing a separate do/undo
// pair on the hot path — at 25 cells a full copy is a handful of words and
// cheaper than the bookkeeping an undo stack would add.
type State struct {
	Board        Board
	AX, AY       int
	PlacementsX  int
	PlacementsO  int
	ToMove       Player
}

// NewInitialState returns the starting position: empty board, window at
// (1,1), both placement counters at zero, X to move.
func NewInitialState() State {
	return State{
		AX:     1,
		AY:     1,
		ToMove: PlayerX,
	}
}

// Placements returns the placement counter for the given side.
func (s State) Placements(p Player) int {
	if p == PlayerX {
		return s.PlacementsX
	}
	return s.PlacementsO
}

func (s State) withPlacements(p Player, v int) State {
	if p == PlayerX {
		s.PlacementsX = v
	} else {
		s.PlacementsO = v
	}
	return s
}

// CountCells reports how many board cells currently hold the given marker.
func (s State) CountCells(c Cell) int {
	n := 0
	for _, v := range s.Board {
		if v == c {
			n++
		}
	}
	return n
}

// CountEmpty reports the number of empty cells on the whole board.
func (s State) CountEmpty() int {
	n := 0
	for _, v := range s.Board {
		if v == CellEmpty {
			n++
		}
	}
	return n
}
