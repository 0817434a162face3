package engine

import "testing"

func TestEvalDefaultMonotonicInDepth(t *testing.T) {
	fast := EvalDefault(NewInitialState(), PlayerX, true, PlayerX, 2)
	slow := EvalDefault(NewInitialState(), PlayerX, true, PlayerX, 5)
	if fast <= slow {
		t.Fatalf("a faster AI win must score higher: fast=%d slow=%d", fast, slow)
	}

	fastLoss := EvalDefault(NewInitialState(), PlayerO, true, PlayerX, 2)
	slowLoss := EvalDefault(NewInitialState(), PlayerO, true, PlayerX, 5)
	if fastLoss >= slowLoss {
		t.Fatalf("a faster AI loss must score lower: fast=%d slow=%d", fastLoss, slowLoss)
	}
}

func TestEvalDefaultNonTerminalIsZero(t *testing.T) {
	if got := EvalDefault(NewInitialState(), 0, false, PlayerX, 3); got != 0 {
		t.Fatalf("expected 0 for non-terminal/draw, got %d", got)
	}
}

func TestEvalPositionalMonotonicInDepth(t *testing.T) {
	fast := EvalPositional(NewInitialState(), PlayerX, true, PlayerX, 2)
	slow := EvalPositional(NewInitialState(), PlayerX, true, PlayerX, 5)
	if fast <= slow {
		t.Fatalf("a faster AI win must score higher: fast=%d slow=%d", fast, slow)
	}
}

func TestEvalPositionalTerminalDominatesHeuristic(t *testing.T) {
	terminal := EvalPositional(NewInitialState(), PlayerX, true, PlayerX, 1)
	s := NewInitialState()
	s.Board[index(1, 1)] = CellX
	heuristic := EvalPositional(s, 0, false, PlayerX, 1)
	if heuristic >= terminal {
		t.Fatalf("non-terminal score must stay well below a near-immediate win: heuristic=%d terminal=%d", heuristic, terminal)
	}
}

func TestEvalPositionalRewardsCentreAndThreats(t *testing.T) {
	s := NewInitialState()
	s.Board[index(2, 2)] = CellX // window centre
	withCentre := EvalPositional(s, 0, false, PlayerX, 0)

	empty := EvalPositional(NewInitialState(), 0, false, PlayerX, 0)
	if withCentre <= empty {
		t.Fatalf("occupying the centre must score higher than an empty window")
	}

	s2 := NewInitialState()
	s2.Board[index(2, 2)] = CellX
	s2.Board[index(1, 2)] = CellX
	withThreat := EvalPositional(s2, 0, false, PlayerX, 0)
	if withThreat <= withCentre {
		t.Fatalf("a two-in-a-row-with-empty threat must add to the score")
	}
}

func TestRegistryLookupFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	fn := r.Lookup("does-not-exist")
	if fn == nil {
		t.Fatalf("expected fallback evaluator, got nil")
	}
	got := fn(NewInitialState(), PlayerX, true, PlayerX, 2)
	want := EvalDefault(NewInitialState(), PlayerX, true, PlayerX, 2)
	if got != want {
		t.Fatalf("fallback must behave like the default plugin")
	}
}

func TestRegistryRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("", EvalDefault); err != ErrInvalidPlugin {
		t.Fatalf("expected ErrInvalidPlugin for empty name, got %v", err)
	}
	if err := r.Register("custom", nil); err != ErrInvalidPlugin {
		t.Fatalf("expected ErrInvalidPlugin for nil evaluator, got %v", err)
	}
}

func TestRegistryNamesListsBuiltins(t *testing.T) {
	r := NewRegistry()
	names := map[string]bool{}
	for _, n := range r.Names() {
		names[n] = true
	}
	if !names["default"] || !names["positional"] {
		t.Fatalf("expected both built-ins registered, got %v", r.Names())
	}
}
