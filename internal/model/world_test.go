package model

import "testing"

func buildTestWorld() (*World, TeamID, TeamID, LocationID, LocationID) {
	w := NewWorld(1)
	home := w.AddLocation("Park A", false)
	away := w.AddLocation("Park B", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", away)
	return w, teamA, teamB, home, away
}

func TestAddLocation_idempotent(t *testing.T) {
	w := NewWorld(1)
	a := w.AddLocation("Park A", false)
	b := w.AddLocation("Park A", false)
	if a != b {
		t.Fatalf("AddLocation should be idempotent by name, got %d and %d", a, b)
	}
	if len(w.Locations) != 1 {
		t.Fatalf("len(Locations) = %d, want 1", len(w.Locations))
	}
}

func TestAddMatchup_updatesBothTeams(t *testing.T) {
	w, teamA, teamB, _, _ := buildTestWorld()
	matchupID := w.AddMatchup(teamA, teamB)

	if len(w.Team(teamA).Matchups) != 1 || w.Team(teamA).Matchups[0] != matchupID {
		t.Fatalf("teamA.Matchups = %v, want [%d]", w.Team(teamA).Matchups, matchupID)
	}
	if len(w.Team(teamB).Matchups) != 1 || w.Team(teamB).Matchups[0] != matchupID {
		t.Fatalf("teamB.Matchups = %v, want [%d]", w.Team(teamB).Matchups, matchupID)
	}
}

func TestMatchup_OtherTeamAndHasTeam(t *testing.T) {
	w, teamA, teamB, _, _ := buildTestWorld()
	matchupID := w.AddMatchup(teamA, teamB)
	m := w.Matchup(matchupID)

	if m.OtherTeam(teamA) != teamB {
		t.Errorf("OtherTeam(teamA) = %d, want %d", m.OtherTeam(teamA), teamB)
	}
	if m.OtherTeam(teamB) != teamA {
		t.Errorf("OtherTeam(teamB) = %d, want %d", m.OtherTeam(teamB), teamA)
	}
	if !m.HasTeam(teamA) || !m.HasTeam(teamB) {
		t.Error("HasTeam should report true for both of the matchup's teams")
	}
}

func TestSelectAndDeselectGameslot(t *testing.T) {
	w, teamA, teamB, home, _ := buildTestWorld()
	matchupID := w.AddMatchup(teamA, teamB)
	date := NewDate(2026, 4, 1)
	gameslotID := w.AddGameslot(date, 9*60, home)

	if err := w.SelectGameslot(matchupID, gameslotID); err != nil {
		t.Fatalf("SelectGameslot() error: %v", err)
	}
	if w.Matchup(matchupID).SelectedGameslot != gameslotID {
		t.Error("matchup's SelectedGameslot was not set")
	}
	if w.Gameslot(gameslotID).SelectedMatchup != matchupID {
		t.Error("gameslot's SelectedMatchup was not set")
	}
	if w.Location(home).NumGamesByDate[date] != 1 {
		t.Errorf("location NumGamesByDate = %d, want 1", w.Location(home).NumGamesByDate[date])
	}
	if len(w.Team(teamA).GamesByDate[date]) != 1 {
		t.Error("teamA.GamesByDate was not updated")
	}

	if err := w.SelectGameslot(matchupID, gameslotID); err == nil {
		t.Error("expected error selecting an already-selected matchup")
	}

	if err := w.DeselectGameslot(matchupID); err != nil {
		t.Fatalf("DeselectGameslot() error: %v", err)
	}
	if w.Matchup(matchupID).SelectedGameslot != NoGameslot {
		t.Error("matchup's SelectedGameslot was not cleared")
	}
	if w.Location(home).NumGamesByDate[date] != 0 {
		t.Errorf("location NumGamesByDate after deselect = %d, want 0", w.Location(home).NumGamesByDate[date])
	}
	if len(w.Team(teamA).GamesByDate[date]) != 0 {
		t.Error("teamA.GamesByDate was not cleared")
	}

	if err := w.DeselectGameslot(matchupID); err == nil {
		t.Error("expected error deselecting a matchup with no selection")
	}
}

func TestIsIsolated(t *testing.T) {
	w, teamA, teamB, home, _ := buildTestWorld()
	m1 := w.AddMatchup(teamA, teamB)
	date := NewDate(2026, 4, 1)
	slot1 := w.AddGameslot(date, 9*60, home)
	slot2 := w.AddGameslot(date, 11*60, home)

	if err := w.SelectGameslot(m1, slot1); err != nil {
		t.Fatal(err)
	}
	if !w.IsIsolated(m1) {
		t.Error("matchup should be isolated when it's the only game at its (date, location)")
	}

	teamC := w.AddTeam("U10", "Owls", home)
	teamD := w.AddTeam("U10", "Finches", home)
	m2 := w.AddMatchup(teamC, teamD)
	if err := w.SelectGameslot(m2, slot2); err != nil {
		t.Fatal(err)
	}
	if w.IsIsolated(m1) {
		t.Error("matchup should not be isolated once another game shares its (date, location)")
	}
}

func TestSelectPreferredHomeTeam(t *testing.T) {
	w, teamA, teamB, _, _ := buildTestWorld()
	matchupID := w.AddMatchup(teamA, teamB)

	if err := w.SelectPreferredHomeTeam(matchupID, teamA); err != nil {
		t.Fatalf("SelectPreferredHomeTeam() error: %v", err)
	}
	if w.Team(teamA).NumPreferredHomeGames != 1 {
		t.Errorf("teamA.NumPreferredHomeGames = %d, want 1", w.Team(teamA).NumPreferredHomeGames)
	}
	if w.Team(teamA).NumMatchupsWithHomePreferenceChosen != 1 || w.Team(teamB).NumMatchupsWithHomePreferenceChosen != 1 {
		t.Error("both teams should have NumMatchupsWithHomePreferenceChosen incremented")
	}

	if err := w.SelectPreferredHomeTeam(matchupID, teamB); err == nil {
		t.Error("expected error setting preferred home team twice")
	}

	teamC := w.AddTeam("U10", "Owls", NoLocation)
	otherMatchup := w.AddMatchup(teamA, teamC)
	if err := w.SelectPreferredHomeTeam(otherMatchup, teamB); err == nil {
		t.Error("expected error setting a preferred home team that isn't in the matchup")
	}
}

func TestHomeAwayOrder(t *testing.T) {
	w, teamA, teamB, home, _ := buildTestWorld()
	matchupID := w.AddMatchup(teamA, teamB)
	date := NewDate(2026, 4, 1)
	slot := w.AddGameslot(date, 9*60, home)
	if err := w.SelectGameslot(matchupID, slot); err != nil {
		t.Fatal(err)
	}

	homeTeam, awayTeam := w.HomeAwayOrder(matchupID)
	if homeTeam != teamA || awayTeam != teamB {
		t.Errorf("HomeAwayOrder() = (%d, %d), want (%d, %d)", homeTeam, awayTeam, teamA, teamB)
	}
}
