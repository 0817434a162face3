package engine

import "testing"

func TestOpeningSearchProducesRankedEvaluations(t *testing.T) {
	s := NewInitialState()
	history := map[StateKey]struct{}{}
	result := GetEngineEvaluations(s, PlayerX, history, 6, 3, EvalPositional)

	if len(result.Evaluations) == 0 {
		t.Fatalf("expected at least one evaluation from the opening position")
	}
	for _, e := range result.Evaluations {
		if len(e.PV) == 0 || e.PV[0] != e.Action {
			t.Fatalf("PV head must equal the reported action: pv=%v action=%v", e.PV, e.Action)
		}
	}
	if result.Stats.Cutoffs == 0 {
		t.Fatalf("expected at least one alpha-beta cutoff at depth 6")
	}
	if result.Stats.NodesVisited == 0 {
		t.Fatalf("expected a nonzero node count")
	}
}

func TestMultiPVOrderingNonIncreasing(t *testing.T) {
	s := NewInitialState()
	result := GetEngineEvaluations(s, PlayerX, map[StateKey]struct{}{}, 4, 0, EvalPositional)
	for i := 1; i < len(result.Evaluations); i++ {
		if result.Evaluations[i].Score > result.Evaluations[i-1].Score {
			t.Fatalf("evaluations must be sorted by non-increasing score, got %v", result.Evaluations)
		}
	}
}

func TestForcedCompletionChoosesWinningPlacement(t *testing.T) {
	s := NewInitialState()
	// Window default is (ax=1, ay=1); its top row is board row 1, columns 1-3.
	s.Board[index(1, 1)] = CellX
	s.Board[index(1, 2)] = CellX
	s.PlacementsX = 2
	s.Board[index(4, 4)] = CellO
	s.PlacementsO = 1
	s.ToMove = PlayerX

	action, err := ChooseBestAction(s, PlayerX, map[StateKey]struct{}{}, 6, EvalDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Place(index(1, 3))
	if action != want {
		t.Fatalf("expected the winning placement %v, got %v", want, action)
	}
}

func TestFullWindowForcesShift(t *testing.T) {
	s := NewInitialState()
	// Fills every window cell with no completed line; placement counters at
	// the cap so neither place nor move (which needs an empty window cell)
	// remains legal, leaving shift as the only option.
	pattern := [3][3]Cell{
		{CellX, CellO, CellX},
		{CellO, CellO, CellX},
		{CellX, CellX, CellO},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s.Board[index(s.AY+r, s.AX+c)] = pattern[r][c]
		}
	}
	s.PlacementsX = 4
	s.PlacementsO = 4
	s.ToMove = PlayerX

	for _, a := range LegalActions(s, PlayerX) {
		if a.Kind != ActionShift {
			t.Fatalf("expected only shift actions once the window is full, got %v", a)
		}
	}

	action, err := ChooseBestAction(s, PlayerX, map[StateKey]struct{}{}, 6, EvalDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Kind != ActionShift {
		t.Fatalf("expected a shift action, got %v", action)
	}
}

func TestHistoryRepetitionBlocksChosenMove(t *testing.T) {
	s := NewInitialState()
	a := Place(index(1, 1))
	next, err := Apply(s, a, PlayerX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	history := map[StateKey]struct{}{ComputeKey(next): {}}

	action, err := ChooseBestAction(s, PlayerX, history, 4, EvalPositional)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action == a {
		t.Fatalf("expected the history-repeating action to be filtered out")
	}
}

func TestChooseBestActionNoLegalMoves(t *testing.T) {
	s := NewInitialState()
	history := map[StateKey]struct{}{}
	for _, a := range LegalActions(s, PlayerX) {
		next, _ := Apply(s, a, PlayerX)
		history[ComputeKey(next)] = struct{}{}
	}
	if _, err := ChooseBestAction(s, PlayerX, history, 4, EvalDefault); err != ErrNoLegalMoves {
		t.Fatalf("expected ErrNoLegalMoves, got %v", err)
	}
}

func TestSharedTTReducesSecondSearchNodeCount(t *testing.T) {
	s := NewInitialState()
	tt := NewTranspositionTable(defaultTTSize)
	pathSet := map[StateKey]struct{}{}
	history := map[StateKey]struct{}{}

	stats1 := &Stats{}
	search(s, PlayerX, PlayerX, 0, 4, pathSet, history, stats1, EvalPositional, negInf, posInf, tt)

	stats2 := &Stats{}
	search(s, PlayerX, PlayerX, 0, 4, pathSet, history, stats2, EvalPositional, negInf, posInf, tt)

	if stats2.NodesVisited > stats1.NodesVisited {
		t.Fatalf("second search with a warm shared TT must not visit more nodes: first=%d second=%d", stats1.NodesVisited, stats2.NodesVisited)
	}
}

func TestIterativeDeepenPublishesEveryDepth(t *testing.T) {
	var depths []int
	sink := ProgressSinkFunc(func(snap ProgressSnapshot) {
		depths = append(depths, snap.Depth)
	})
	IterativeDeepen(NewInitialState(), PlayerX, map[StateKey]struct{}{}, 3, 2, EvalDefault, "default", sink)

	if len(depths) != 3 {
		t.Fatalf("expected one snapshot per depth 1..3, got %v", depths)
	}
	for i, d := range depths {
		if d != i+1 {
			t.Fatalf("expected depths published in order 1,2,3, got %v", depths)
		}
	}
}
