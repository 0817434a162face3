// Command tic-tac-tui plays the sliding-window three-in-a-row variant in
// a terminal, driving the adversarial search engine in package engine.
// Everything in this command is an external collaborator of the engine:
// rendering, keyboard input, flag parsing, and the self-play driver loop
// are all out of the engine's own scope.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

type gameConfig struct {
	engineDepth int
	multiPV     int
	evalName    string
	evalNameX   string
	evalNameO   string
	registry    *engine.Registry
}

func (c gameConfig) evalNameFor(p engine.Player) string {
	if p == engine.PlayerX && c.evalNameX != "" {
		return c.evalNameX
	}
	if p == engine.PlayerO && c.evalNameO != "" {
		return c.evalNameO
	}
	return c.evalName
}

func main() {
	engineDepth := flag.Int("engine-depth", 6, "maxDepth for iterative deepening")
	multiPV := flag.Int("multi-pv", 3, "K for multi-PV reporting; <=0 disables engine reports")
	evalName := flag.String("eval", "default", "evaluation plugin for both sides")
	evalNameX := flag.String("eval-x", "", "override evaluation plugin for side X")
	evalNameO := flag.String("eval-o", "", "override evaluation plugin for side O")
	selfPlay := flag.Bool("self-play", false, "run computer-vs-computer without interactive input")
	maxTurns := flag.Int("max-turns", 0, "stop self-play after this many half-moves (0 = unbounded)")
	listEvals := flag.Bool("list-evals", false, "print registered evaluation plugins and exit")
	ttStats := flag.Bool("tt-stats", false, "run one search from the initial position, print transposition table stats, and exit")
	flag.Parse()

	registry := engine.NewRegistry()

	if *listEvals {
		names := registry.Names()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	if *ttStats {
		printTTStats(registry.Lookup(*evalName), *engineDepth)
		return
	}

	cfg := gameConfig{
		engineDepth: *engineDepth,
		multiPV:     *multiPV,
		evalName:    *evalName,
		evalNameX:   *evalNameX,
		evalNameO:   *evalNameO,
		registry:    registry,
	}

	if *selfPlay {
		runSelfPlay(cfg, *maxTurns)
		return
	}

	runInteractive(cfg)
}

// printTTStats runs one search from the initial position and reports the
// transposition table's occupancy and hottest entries, the CLI's analogue
// of the dashboard's /api/status TT payload.
func printTTStats(eval engine.EvalFunc, engineDepth int) {
	s := engine.NewInitialState()
	history := engine.NewHistory()
	history.Record(engine.ComputeKey(s))

	result := engine.GetEngineEvaluations(s, engine.PlayerX, history.Set(), engineDepth, 0, eval)
	fmt.Printf("tt: count=%d capacity=%d\n", result.TTStats.Count, result.TTStats.Capacity)
	for i, entry := range result.TTStats.TopEntries {
		fmt.Printf("  #%d hits=%d depth=%d best=%s\n", i+1, entry.Hits, entry.Depth, entry.BestAction)
	}
}

func runInteractive(cfg gameConfig) {
	t := newTerminalInput()

	choiceLine, err := t.readLine("play as X, O, or self-play (C)? [X]: ")
	if err != nil {
		log.Fatalf("failed to read startup choice: %v", err)
	}
	switch parseStartupChoice(choiceLine) {
	case ChoiceSelfPlay:
		runSelfPlay(cfg, 0)
		return
	case ChoiceO:
		runGame(cfg, t, engine.PlayerO)
	default:
		runGame(cfg, t, engine.PlayerX)
	}
}

// runGame drives one interactive game where the human plays humanSide and
// the engine plays the other side.
func runGame(cfg gameConfig, t *terminalInput, humanSide engine.Player) {
	s := engine.NewInitialState()
	history := engine.NewHistory()
	history.Record(engine.ComputeKey(s))

	for {
		clearScreen()
		renderBoard(s)

		if engine.IsTerminal(s) {
			if winner, ok := engine.Winner(s); ok {
				fmt.Printf("%s wins.\n", winner)
			} else {
				fmt.Println("draw.")
			}
			fmt.Printf("game ended after %d recorded positions.\n", history.Len())
			return
		}

		side := s.ToMove
		var action engine.Action
		var err error

		if side == humanSide {
			action, err = promptAction(t)
			if err == errQuit {
				fmt.Println("bye.")
				return
			}
			if err != nil {
				log.Fatalf("input error: %v", err)
			}
			if next, applyErr := engine.Apply(s, action, side); applyErr != nil {
				fmt.Println(applyErr)
				continue
			} else {
				s = next
			}
		} else {
			evalName := cfg.evalNameFor(side)
			evalFn := cfg.registry.Lookup(evalName)
			sink := engine.ProgressSinkFunc(func(snap engine.ProgressSnapshot) {
				if cfg.multiPV > 0 {
					renderProgress(snap)
				}
			})
			result := engine.IterativeDeepen(s, side, history.Set(), cfg.engineDepth, cfg.multiPV, evalFn, evalName, sink)
			if len(result.Evaluations) == 0 {
				fmt.Println("engine has no legal moves; game over.")
				return
			}
			action = result.Evaluations[0].Action
			next, applyErr := engine.Apply(s, action, side)
			if applyErr != nil {
				log.Fatalf("engine produced an illegal action: %v", applyErr)
			}
			s = next
		}

		history.Record(engine.ComputeKey(s))
	}
}
