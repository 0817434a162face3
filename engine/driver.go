package engine

// Evaluation is one ranked root action report: its score in the AI side's
// frame and the principal variation it leads to, head-prefixed with the
// root action itself.
type Evaluation struct {
	Score int
	Action Action
	PV    []Action
}

// EngineResult is what GetEngineEvaluations returns: the top-K evaluations
// ordered by score descending, plus the stats accumulated across every
// root branch searched.
type EngineResult struct {
	Evaluations []Evaluation
	Stats       Stats
	TTStats     TTStats
}

// ttStatsTopN bounds how many hottest entries GetEngineEvaluations and
// IterativeDeepen carry out of the table they build, for the dashboard's
// /api/status payload and the CLI's --tt-stats diagnostic.
const ttStatsTopN = 5

// defaultTTSize sizes the shared transposition table for one
// getEngineEvaluations call. The board has only 25 cells so the state
// space is tiny compared to the teacher's 19x19 board; 1<<14 buckets of
// four entries (65,536 slots) comfortably cover any reachable search tree at the depths this
// variant's Non-goals (no time-managed or parallel search) call for.
const defaultTTSize = 1 << 14

// GetEngineEvaluations implements §4.7: it ranks every legal root action
// for aiSide by full alpha-beta score at a fixed maxDepth and returns the
// top K (or all, if k <= 0).
func GetEngineEvaluations(s State, aiSide Player, history map[StateKey]struct{}, maxDepth, k int, eval EvalFunc) EngineResult {
	root := LegalActions(s, aiSide)
	candidates := make([]Action, 0, len(root))
	for _, a := range root {
		next, err := Apply(s, a, aiSide)
		if err != nil {
			continue
		}
		if _, repeated := history[ComputeKey(next)]; repeated {
			continue
		}
		candidates = append(candidates, a)
	}
	if len(candidates) == 0 {
		return EngineResult{}
	}

	pathSet := map[StateKey]struct{}{ComputeKey(s): {}}
	tt := NewTranspositionTable(defaultTTSize)
	stats := &Stats{}

	evaluations := make([]Evaluation, 0, len(candidates))
	for _, a := range candidates {
		next, err := Apply(s, a, aiSide)
		if err != nil {
			continue
		}
		result := search(next, aiSide.Other(), aiSide, 1, maxDepth, pathSet, history, stats, eval, negInf, posInf, tt)
		pv := append([]Action{a}, result.PV...)
		evaluations = append(evaluations, Evaluation{Score: result.Score, Action: a, PV: pv})
	}

	sortEvaluationsDescending(evaluations)

	if k > 0 && k < len(evaluations) {
		evaluations = evaluations[:k]
	}

	return EngineResult{Evaluations: evaluations, Stats: *stats, TTStats: tt.Stats(ttStatsTopN)}
}

// sortEvaluationsDescending is a small stable insertion sort: the root
// action lists here are never large enough (<= a few dozen) to justify
// pulling in sort.Slice's reflection overhead.
func sortEvaluationsDescending(evals []Evaluation) {
	for i := 1; i < len(evals); i++ {
		j := i
		for j > 0 && evals[j].Score > evals[j-1].Score {
			evals[j], evals[j-1] = evals[j-1], evals[j]
			j--
		}
	}
}

// ChooseBestAction is GetEngineEvaluations(..., k=1).Evaluations[0].Action.
// It fails ErrNoLegalMoves when every legal root action would repeat a
// recorded history position.
func ChooseBestAction(s State, aiSide Player, history map[StateKey]struct{}, maxDepth int, eval EvalFunc) (Action, error) {
	result := GetEngineEvaluations(s, aiSide, history, maxDepth, 1, eval)
	if len(result.Evaluations) == 0 {
		return Action{}, ErrNoLegalMoves
	}
	return result.Evaluations[0].Action, nil
}

// ProgressSnapshot is the §6 progress-sink payload published once per
// completed depth of iterative deepening.
type ProgressSnapshot struct {
	Depth        int
	MaxDepth     int
	NodesVisited int
	CacheHits    int
	Cutoffs      int
	Evaluations  []Evaluation
	EvalName     string
	TTStats      TTStats
}

// ProgressSink receives one snapshot per completed iterative-deepening
// depth. Implementations are external adapters (terminal renderer,
// websocket broadcaster); the engine itself never inspects what a sink
// does with a snapshot.
type ProgressSink interface {
	Publish(ProgressSnapshot)
}

// ProgressSinkFunc adapts a plain function to ProgressSink.
type ProgressSinkFunc func(ProgressSnapshot)

func (f ProgressSinkFunc) Publish(s ProgressSnapshot) { f(s) }

// IterativeDeepen runs GetEngineEvaluations for maxDepth = 1, 2, ...,
// up to the given ceiling, publishing a progress snapshot after each
// completed depth and returning the final (deepest) result. Per §5, the
// only yield point is between depths: a single depth's search always
// runs to completion. Each depth starts with a fresh stats counter and a
// fresh transposition table, per the spec's default choice of trading TT
// reuse across depths for simpler bound reasoning.
func IterativeDeepen(s State, aiSide Player, history map[StateKey]struct{}, maxDepth, k int, eval EvalFunc, evalName string, sink ProgressSink) EngineResult {
	var final EngineResult
	for d := 1; d <= maxDepth; d++ {
		final = GetEngineEvaluations(s, aiSide, history, d, k, eval)
		if sink != nil {
			sink.Publish(ProgressSnapshot{
				Depth:        d,
				MaxDepth:     maxDepth,
				NodesVisited: final.Stats.NodesVisited,
				CacheHits:    final.Stats.CacheHits,
				Cutoffs:      final.Stats.Cutoffs,
				Evaluations:  final.Evaluations,
				EvalName:     evalName,
				TTStats:      final.TTStats,
			})
		}
	}
	return final
}
