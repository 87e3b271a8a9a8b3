package preprocessor

import (
	"testing"

	"github.com/derekprior/leagueforge/internal/model"
)

func TestChoosePreferredHomeTeams_alternatesWithinPair(t *testing.T) {
	w := model.NewWorld(1)
	home := w.AddLocation("Park A", false)
	away := w.AddLocation("Park B", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", away)

	m1 := w.AddMatchup(teamA, teamB)
	m2 := w.AddMatchup(teamA, teamB)

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatalf("ChoosePreferredHomeTeams() error: %v", err)
	}

	p1 := w.Matchup(m1).PreferredHomeTeam
	p2 := w.Matchup(m2).PreferredHomeTeam
	if p1 == model.NoTeam || p2 == model.NoTeam {
		t.Fatal("both matchups should have a preferred home team")
	}
	if p1 == p2 {
		t.Errorf("expected the two matchups in a pair to alternate home team, both got %d", p1)
	}
}

func TestChoosePreferredHomeTeams_preassignedCompensation(t *testing.T) {
	w := model.NewWorld(1)
	home := w.AddLocation("Park A", false)
	away := w.AddLocation("Park B", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", away)

	preassigned := w.AddMatchup(teamA, teamB)
	date := model.NewDate(2026, 4, 1)
	slot := w.AddGameslot(date, 18*60, home)
	m := w.Matchup(preassigned)
	m.IsPreassigned = true
	if err := w.SelectGameslot(preassigned, slot); err != nil {
		t.Fatal(err)
	}

	compensated := w.AddMatchup(teamA, teamB)

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatalf("ChoosePreferredHomeTeams() error: %v", err)
	}

	if w.Matchup(preassigned).PreferredHomeTeam != teamA {
		t.Errorf("preassigned matchup's preferred home = %d, want teamA (%d)", w.Matchup(preassigned).PreferredHomeTeam, teamA)
	}
	if w.Matchup(compensated).PreferredHomeTeam != teamB {
		t.Errorf("compensating matchup's preferred home = %d, want teamB (%d)", w.Matchup(compensated).PreferredHomeTeam, teamB)
	}
}

func TestChoosePreferredHomeTeams_leftoverUsesLowerRatio(t *testing.T) {
	w := model.NewWorld(7)
	home := w.AddLocation("Park A", false)
	away := w.AddLocation("Park B", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", away)

	// Two single-matchup groups, each of which falls straight through to
	// the leftover tie-break (step B4) since neither has a second matchup
	// to pair against.
	earlier := w.AddMatchup(teamA, teamB)

	teamC := w.AddTeam("U10", "Owls", home)
	leftover := w.AddMatchup(teamA, teamC)

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatalf("ChoosePreferredHomeTeams() error: %v", err)
	}

	if w.Matchup(earlier).PreferredHomeTeam == model.NoTeam {
		t.Fatal("earlier matchup should have a preferred home team")
	}
	if w.Matchup(leftover).PreferredHomeTeam == model.NoTeam {
		t.Fatal("leftover matchup should have a preferred home team")
	}
	// If Hawks hosted the earlier matchup its ratio is 1 against Owls' 0,
	// so the leftover must go to Owls.
	if w.Matchup(earlier).PreferredHomeTeam == teamA && w.Matchup(leftover).PreferredHomeTeam != teamC {
		t.Errorf("leftover matchup's preferred home = %d, want the lower-ratio team Owls (%d)", w.Matchup(leftover).PreferredHomeTeam, teamC)
	}
}
