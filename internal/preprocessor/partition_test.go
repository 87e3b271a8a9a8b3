package preprocessor

import (
	"testing"

	"github.com/derekprior/leagueforge/internal/model"
)

func TestPartitionGameslots_preferredMatchesHomeLocation(t *testing.T) {
	w := model.NewWorld(3)
	home := w.AddLocation("Park A", false)
	away := w.AddLocation("Park B", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", away)
	matchupID := w.AddMatchup(teamA, teamB)

	homeSlot := w.AddGameslot(model.NewDate(2026, 4, 1), 18*60, home)
	awaySlot := w.AddGameslot(model.NewDate(2026, 4, 2), 18*60, away)

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatalf("ChoosePreferredHomeTeams() error: %v", err)
	}
	if err := PartitionGameslots(w); err != nil {
		t.Fatalf("PartitionGameslots() error: %v", err)
	}

	m := w.Matchup(matchupID)
	preferredHome := w.Team(m.PreferredHomeTeam).HomeLocation

	var expectedPreferred, expectedBackup model.GameslotID
	if preferredHome == home {
		expectedPreferred, expectedBackup = homeSlot, awaySlot
	} else {
		expectedPreferred, expectedBackup = awaySlot, homeSlot
	}

	if len(m.PreferredGameslots) != 1 || m.PreferredGameslots[0] != expectedPreferred {
		t.Errorf("PreferredGameslots = %v, want [%d]", m.PreferredGameslots, expectedPreferred)
	}
	if len(m.BackupGameslots) != 1 || m.BackupGameslots[0] != expectedBackup {
		t.Errorf("BackupGameslots = %v, want [%d]", m.BackupGameslots, expectedBackup)
	}
	if !w.Gameslot(expectedPreferred).MatchupsThatPreferThisSlot[matchupID] {
		t.Error("preferred gameslot should record the matchup in MatchupsThatPreferThisSlot")
	}
}

func TestPartitionGameslots_blackedOutSlotExcludedFromBoth(t *testing.T) {
	w := model.NewWorld(1)
	home := w.AddLocation("Park A", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", home)
	matchupID := w.AddMatchup(teamA, teamB)

	date := model.NewDate(2026, 4, 1)
	slot := w.AddGameslot(date, 18*60, home)
	w.Blackouts = append(w.Blackouts, model.Blackout{Date: date})

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatal(err)
	}
	if err := PartitionGameslots(w); err != nil {
		t.Fatal(err)
	}

	m := w.Matchup(matchupID)
	for _, g := range append(append([]model.GameslotID{}, m.PreferredGameslots...), m.BackupGameslots...) {
		if g == slot {
			t.Error("blacked-out gameslot should not appear in either candidate list")
		}
	}
}

func TestPartitionGameslots_skipsPreassignedMatchupsAndSlots(t *testing.T) {
	w := model.NewWorld(1)
	home := w.AddLocation("Park A", false)
	teamA := w.AddTeam("U10", "Hawks", home)
	teamB := w.AddTeam("U10", "Larks", home)
	preassigned := w.AddMatchup(teamA, teamB)
	date := model.NewDate(2026, 4, 1)
	preassignedSlot := w.AddGameslot(date, 18*60, home)

	m := w.Matchup(preassigned)
	m.IsPreassigned = true
	w.Gameslot(preassignedSlot).IsPreassigned = true
	m.PreferredGameslots = []model.GameslotID{preassignedSlot}
	if err := w.SelectGameslot(preassigned, preassignedSlot); err != nil {
		t.Fatal(err)
	}

	teamC := w.AddTeam("U10", "Owls", home)
	teamD := w.AddTeam("U10", "Finches", home)
	open := w.AddMatchup(teamC, teamD)
	openSlot := w.AddGameslot(model.NewDate(2026, 4, 2), 18*60, home)

	if err := ChoosePreferredHomeTeams(w); err != nil {
		t.Fatal(err)
	}
	if err := PartitionGameslots(w); err != nil {
		t.Fatal(err)
	}

	if len(w.Matchup(preassigned).PreferredGameslots) != 1 {
		t.Error("preassigned matchup's candidate lists should not be touched by PartitionGameslots")
	}

	openMatchup := w.Matchup(open)
	for _, g := range append(append([]model.GameslotID{}, openMatchup.PreferredGameslots...), openMatchup.BackupGameslots...) {
		if g == preassignedSlot {
			t.Error("a preassigned gameslot should never appear as a candidate for another matchup")
		}
	}
	found := false
	for _, g := range append(append([]model.GameslotID{}, openMatchup.PreferredGameslots...), openMatchup.BackupGameslots...) {
		if g == openSlot {
			found = true
		}
	}
	if !found {
		t.Error("the open gameslot should be a candidate for the open matchup")
	}
}
