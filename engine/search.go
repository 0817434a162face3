package engine

import "math"

// Stats accumulates search-wide counters across an entire
// getEngineEvaluations call (shared by every root branch), matching the
// teacher's SearchStats fields it is grounded on.
type Stats struct {
	NodesVisited int
	CacheHits    int
	Cutoffs      int
}

// Result is what one search call returns: a score in the AI side's frame,
// the move that achieved it (if any legal move existed), and the
// principal variation from this node down to the evaluated leaf.
type Result struct {
	Score      int
	BestAction Action
	HasBest    bool
	PV         []Action
}

const (
	negInf = math.MinInt32 / 2
	posInf = math.MaxInt32 / 2
)

// search is the depth-limited negamax-style alpha-beta core spec'd in
// §4.4. sideToMove is whoever is on the move at state s; aiSide never
// changes across the recursion and fixes which frame scores are reported
// in. pathSet guards against infinite recursion through shift/move cycles
// within this single call tree; history is the real game's read-only
// repetition record. Both pathSet and history are shared across the whole
// recursion and are never aliased outside one getEngineEvaluations call,
// per the single-threaded, unshared-TT contract in §5.
func search(
	s State,
	sideToMove Player,
	aiSide Player,
	depth, maxDepth int,
	pathSet map[StateKey]struct{},
	history map[StateKey]struct{},
	stats *Stats,
	eval EvalFunc,
	alpha, beta int,
	tt *TranspositionTable,
) Result {
	stats.NodesVisited++

	if winner, ok := Winner(s); ok {
		return Result{Score: eval(s, winner, true, aiSide, depth)}
	}
	if IsDraw(s) {
		return Result{Score: eval(s, 0, false, aiSide, depth)}
	}
	if depth >= maxDepth {
		return Result{Score: eval(s, 0, false, aiSide, depth)}
	}

	key := ComputeKey(s)

	if _, onPath := pathSet[key]; onPath {
		return Result{Score: eval(s, 0, false, aiSide, depth)}
	}

	remaining := maxDepth - depth
	alphaOrig, betaOrig := alpha, beta

	var ttHint Action
	var haveHint bool

	if entry, ok := tt.Probe(key); ok && entry.Depth >= remaining {
		if entry.HasBest {
			ttHint = entry.BestAction
			haveHint = true
		}
		switch entry.Flag {
		case TTExact:
			stats.CacheHits++
			pv := []Action(nil)
			if entry.HasBest {
				pv = []Action{entry.BestAction}
			}
			return Result{Score: entry.Score, BestAction: entry.BestAction, HasBest: entry.HasBest, PV: pv}
		case TTLower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case TTUpper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			stats.Cutoffs++
			return Result{Score: entry.Score, BestAction: entry.BestAction, HasBest: entry.HasBest}
		}
	}

	pathSet[key] = struct{}{}

	legal := LegalActions(s, sideToMove)
	filtered := make([]Action, 0, len(legal))
	for _, a := range legal {
		next, err := Apply(s, a, sideToMove)
		if err != nil {
			continue
		}
		if _, repeated := history[ComputeKey(next)]; repeated {
			continue
		}
		filtered = append(filtered, a)
	}

	if len(filtered) == 0 {
		delete(pathSet, key)
		return Result{Score: eval(s, 0, false, aiSide, depth)}
	}

	var hintPtr *Action
	if haveHint {
		hintPtr = &ttHint
	}
	ordered := OrderActions(filtered, s.AX, s.AY, hintPtr)

	maximizing := sideToMove == aiSide
	best := negInf
	if !maximizing {
		best = posInf
	}
	var bestAction Action
	hasBest := false
	var bestPV []Action

	for _, a := range ordered {
		next, err := Apply(s, a, sideToMove)
		if err != nil {
			continue
		}
		child := search(next, sideToMove.Other(), aiSide, depth+1, maxDepth, pathSet, history, stats, eval, alpha, beta, tt)

		improved := false
		if maximizing {
			improved = !hasBest || child.Score > best
		} else {
			improved = !hasBest || child.Score < best
		}
		if improved {
			best = child.Score
			bestAction = a
			hasBest = true
			bestPV = append(bestPV[:0], a)
			bestPV = append(bestPV, child.PV...)
		}

		if maximizing {
			if best > alpha {
				alpha = best
			}
		} else {
			if best < beta {
				beta = best
			}
		}
		if alpha >= beta {
			stats.Cutoffs++
			break
		}
	}

	var flag TTFlag
	switch {
	case best <= alphaOrig:
		flag = TTUpper
	case best >= betaOrig:
		flag = TTLower
	default:
		flag = TTExact
	}
	tt.Store(TTEntry{Key: key, Score: best, Depth: remaining, Flag: flag, BestAction: bestAction, HasBest: hasBest})

	delete(pathSet, key)

	return Result{Score: best, BestAction: bestAction, HasBest: hasBest, PV: bestPV}
}
