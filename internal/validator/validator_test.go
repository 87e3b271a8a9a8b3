package validator

import (
	"testing"

	"github.com/derekprior/leagueforge/internal/model"
	"github.com/derekprior/leagueforge/internal/xlsx"
)

func baseWorld(t *testing.T) (*model.World, model.TeamID, model.TeamID, model.LocationID) {
	t.Helper()
	w := model.NewWorld(1)
	loc := w.AddLocation("Field A", false)
	teamA := w.AddTeam("U10", "Hawks", loc)
	teamB := w.AddTeam("U10", "Larks", loc)
	return w, teamA, teamB, loc
}

func writeWorkbook(t *testing.T, w *model.World) string {
	t.Helper()
	f, err := xlsx.Generate(w)
	if err != nil {
		t.Fatal(err)
	}
	path := t.TempDir() + "/schedule.xlsx"
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidate_cleanScheduleHasNoViolations(t *testing.T) {
	w, teamA, teamB, loc := baseWorld(t)
	matchup := w.AddMatchup(teamA, teamB)
	if err := w.SelectPreferredHomeTeam(matchup, teamA); err != nil {
		t.Fatal(err)
	}
	slot := w.AddGameslot(model.NewDate(2026, 4, 1), 9*60, loc)
	w.Gameslot(slot).MatchupsThatPreferThisSlot[matchup] = true
	if err := w.SelectGameslot(matchup, slot); err != nil {
		t.Fatal(err)
	}

	path := writeWorkbook(t, w)

	base, _, _, _ := baseWorld(t)
	violations, err := Validate(base, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) != 0 {
		t.Errorf("expected no violations, got %+v", violations)
	}
}

func TestValidate_flagsBlackoutViolation(t *testing.T) {
	w, teamA, teamB, loc := baseWorld(t)
	matchup := w.AddMatchup(teamA, teamB)
	if err := w.SelectPreferredHomeTeam(matchup, teamA); err != nil {
		t.Fatal(err)
	}
	slot := w.AddGameslot(model.NewDate(2026, 4, 1), 9*60, loc)
	w.Gameslot(slot).MatchupsThatPreferThisSlot[matchup] = true
	if err := w.SelectGameslot(matchup, slot); err != nil {
		t.Fatal(err)
	}

	path := writeWorkbook(t, w)

	base, _, _, _ := baseWorld(t)
	base.Blackouts = append(base.Blackouts, model.Blackout{Date: model.NewDate(2026, 4, 1)})

	violations, err := Validate(base, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(violations) == 0 {
		t.Fatal("expected a blackout violation")
	}
}

func TestValidate_flagsIncompleteSchedule(t *testing.T) {
	w, teamA, teamB, loc := baseWorld(t)
	matchup := w.AddMatchup(teamA, teamB)
	if err := w.SelectPreferredHomeTeam(matchup, teamA); err != nil {
		t.Fatal(err)
	}
	slot := w.AddGameslot(model.NewDate(2026, 4, 1), 9*60, loc)
	w.Gameslot(slot).MatchupsThatPreferThisSlot[matchup] = true
	if err := w.SelectGameslot(matchup, slot); err != nil {
		t.Fatal(err)
	}

	path := writeWorkbook(t, w)

	base, _, _, baseLoc := baseWorld(t)
	base.AddTeam("U10", "Owls", baseLoc)

	violations, err := Validate(base, path)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, v := range violations {
		if v.Message == "Owls has no games scheduled" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an incomplete-schedule violation for Owls, got %+v", violations)
	}
}
