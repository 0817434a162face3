package engine

import "testing"

func TestLegalActionsInitialStateOnlyPlacements(t *testing.T) {
	s := NewInitialState()
	actions := LegalActions(s, PlayerX)
	if len(actions) != 9 {
		t.Fatalf("expected 9 placements in the 3x3 window, got %d", len(actions))
	}
	for _, a := range actions {
		if a.Kind != ActionPlace {
			t.Fatalf("expected only place actions before 2 placements, got %v", a)
		}
	}
}

func TestLegalActionsGatedByPlacementMinimum(t *testing.T) {
	s := NewInitialState()
	s.PlacementsX = 1
	actions := LegalActions(s, PlayerX)
	for _, a := range actions {
		if a.Kind == ActionMove || a.Kind == ActionShift {
			t.Fatalf("move/shift must not be enumerated below 2 placements, got %v", a)
		}
	}

	s.PlacementsX = 2
	actions = LegalActions(s, PlayerX)
	foundShift := false
	for _, a := range actions {
		if a.Kind == ActionShift {
			foundShift = true
		}
	}
	if !foundShift {
		t.Fatalf("expected shift actions once placements >= 2")
	}
}

func TestLegalActionsStopPlacingAtFour(t *testing.T) {
	s := NewInitialState()
	s.PlacementsX = 4
	actions := LegalActions(s, PlayerX)
	for _, a := range actions {
		if a.Kind == ActionPlace {
			t.Fatalf("must not enumerate place once placementsX == 4, got %v", a)
		}
	}
}

func TestLegalActionsEveryOneApplies(t *testing.T) {
	s := NewInitialState()
	s.Board[index(1, 1)] = CellX
	s.PlacementsX = 2
	s.Board[index(0, 0)] = CellO
	s.PlacementsO = 1

	for _, a := range LegalActions(s, PlayerX) {
		if _, err := Apply(s, a, PlayerX); err != nil {
			t.Fatalf("enumerated action %v failed to apply: %v", a, err)
		}
	}
}

func TestLegalActionsShiftRespectsBounds(t *testing.T) {
	s := NewInitialState()
	s.AX, s.AY = 0, 0
	s.PlacementsX = 2
	for _, a := range LegalActions(s, PlayerX) {
		if a.Kind != ActionShift {
			continue
		}
		if a.DX < 0 || a.DY < 0 {
			t.Fatalf("shift from corner (0,0) must not go negative, got %v", a)
		}
	}
}
