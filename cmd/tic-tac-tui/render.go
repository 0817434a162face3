package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

const clearScreenSeq = "\x1b[2J\x1b[H"

// noClearScreen reports whether NO_CLEAR_SCREEN=1 is set, per §6.
func noClearScreen() bool {
	return os.Getenv("NO_CLEAR_SCREEN") == "1"
}

func clearScreen() {
	if noClearScreen() {
		return
	}
	fmt.Print(clearScreenSeq)
}

// renderBoard prints the 5x5 board with row letters A-E and column numbers
// 1-5, highlighting the active window's cells.
func renderBoard(s engine.State) {
	var b strings.Builder
	b.WriteString("    1   2   3   4   5\n")
	for r := 0; r < engine.BoardSize; r++ {
		fmt.Fprintf(&b, "  +---+---+---+---+---+\n%c |", 'A'+r)
		for c := 0; c < engine.BoardSize; c++ {
			glyph := s.Board[r*engine.BoardSize+c].String()
			if engine.InWindow(r*engine.BoardSize+c, s.AX, s.AY) {
				fmt.Fprintf(&b, " %s*|", glyph)
			} else {
				fmt.Fprintf(&b, " %s |", glyph)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  +---+---+---+---+---+\n")
	fmt.Fprintf(&b, "window: (%d,%d)  placements X=%d O=%d  to move: %s\n",
		s.AX, s.AY, s.PlacementsX, s.PlacementsO, s.ToMove)
	fmt.Print(b.String())
}

// renderProgress prints one iterative-deepening progress snapshot.
func renderProgress(snap engine.ProgressSnapshot) {
	fmt.Printf("depth %d/%d  nodes=%d cache_hits=%d cutoffs=%d eval=%s\n",
		snap.Depth, snap.MaxDepth, snap.NodesVisited, snap.CacheHits, snap.Cutoffs, snap.EvalName)
	for i, e := range snap.Evaluations {
		fmt.Printf("  #%d score=%d pv=%s\n", i+1, e.Score, formatPV(e.PV))
	}
}

func formatPV(pv []engine.Action) string {
	parts := make([]string, len(pv))
	for i, a := range pv {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}
