package main

import (
	"fmt"
	"log"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

// runSelfPlay drives computer-vs-computer play with no interactive input,
// per --self-play. maxTurns <= 0 means unbounded (stops only on a terminal
// state or a NoLegalMoves error); a positive maxTurns stops after that many
// half-moves and reports "terminatedByMaxTurns", matching end-to-end
// scenario 6.
func runSelfPlay(cfg gameConfig, maxTurns int) {
	s := engine.NewInitialState()
	history := engine.NewHistory()
	history.Record(engine.ComputeKey(s))

	turns := 0
	for {
		if engine.IsTerminal(s) {
			clearScreen()
			renderBoard(s)
			if winner, ok := engine.Winner(s); ok {
				fmt.Printf("%s wins.\n", winner)
			} else {
				fmt.Println("draw.")
			}
			fmt.Printf("game ended after %d recorded positions.\n", history.Len())
			return
		}
		if maxTurns > 0 && turns >= maxTurns {
			log.Printf("self-play stopped: terminatedByMaxTurns after %d turns", turns)
			return
		}

		side := s.ToMove
		evalName := cfg.evalNameFor(side)
		evalFn := cfg.registry.Lookup(evalName)

		sink := engine.ProgressSinkFunc(func(snap engine.ProgressSnapshot) {
			if cfg.multiPV > 0 {
				renderProgress(snap)
			}
		})

		result := engine.IterativeDeepen(s, side, history.Set(), cfg.engineDepth, cfg.multiPV, evalFn, evalName, sink)
		if len(result.Evaluations) == 0 {
			log.Printf("self-play stopped: no legal moves for %s", side)
			return
		}
		action := result.Evaluations[0].Action

		next, err := engine.Apply(s, action, side)
		if err != nil {
			log.Printf("self-play stopped: engine produced an illegal action: %v", err)
			return
		}
		s = next
		history.Record(engine.ComputeKey(s))
		turns++

		clearScreen()
		renderBoard(s)
		fmt.Printf("turn %d: %s played %s\n", turns, side, action)
	}
}
