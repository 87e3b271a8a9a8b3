package model

import "testing"

// TestWindowConstraint_SatisfiedBySelection walks the boundary scenario
// where a team already has a selected game on day D, a window constraint
// caps it to one game per any 2 consecutive days, and a new matchup is
// tentatively checked for day D+1 (too close) and day D+2 (far enough).
func TestWindowConstraint_SatisfiedBySelection(t *testing.T) {
	w, teamA, teamB, home, _ := buildTestWorld()
	teamC := w.AddTeam("U10", "Owls", home)

	wc := WindowConstraint{WindowSize: 2, MaxGamesInWindow: 1}
	w.WindowConstraints = []WindowConstraint{wc}

	d0 := NewDate(2026, 4, 1)
	d1 := NewDate(2026, 4, 2)
	d2 := NewDate(2026, 4, 3)

	already := w.AddMatchup(teamA, teamB)
	slot0 := w.AddGameslot(d0, 9*60, home)
	if err := w.SelectGameslot(already, slot0); err != nil {
		t.Fatal(err)
	}

	candidate := w.AddMatchup(teamA, teamC)
	slot1 := w.AddGameslot(d1, 9*60, home)
	slot2 := w.AddGameslot(d2, 9*60, home)

	if wc.SatisfiedBySelection(w, candidate, slot1) {
		t.Error("expected day D+1 to violate the window constraint")
	}
	if !wc.SatisfiedBySelection(w, candidate, slot2) {
		t.Error("expected day D+2 to satisfy the window constraint")
	}
	if !w.WindowConstraintsSatisfied(candidate, slot2) {
		t.Error("expected WindowConstraintsSatisfied to agree for day D+2")
	}
}

func TestWindowConstraint_SatisfiedBySelection_panicsOnAlreadySelected(t *testing.T) {
	w, teamA, teamB, home, _ := buildTestWorld()
	wc := WindowConstraint{WindowSize: 7, MaxGamesInWindow: 2}
	matchupID := w.AddMatchup(teamA, teamB)
	slot := w.AddGameslot(NewDate(2026, 4, 1), 9*60, home)
	if err := w.SelectGameslot(matchupID, slot); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected SatisfiedBySelection to panic for an already-selected matchup")
		}
	}()
	wc.SatisfiedBySelection(w, matchupID, slot)
}
