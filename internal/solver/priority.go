package solver

import (
	"time"

	"github.com/derekprior/leagueforge/internal/model"
)

// reuseLocation reports whether a gameslot's location already hosts at
// least one selected game on that date (Phase 1 priority level 1).
func reuseLocation(w *model.World, gameslotID model.GameslotID) bool {
	g := w.Gameslot(gameslotID)
	return w.Location(g.Location).NumGamesByDate[g.Date] >= 1
}

// reuseSingleUse and reuseMultiUse split reuseLocation into "exactly one
// game already there" (fills in a lonely game first) versus "two or more
// already there" (Phase 2 priority level 1).
func reuseSingleUse(w *model.World, gameslotID model.GameslotID) bool {
	g := w.Gameslot(gameslotID)
	return w.Location(g.Location).NumGamesByDate[g.Date] == 1
}

func reuseMultiUse(w *model.World, gameslotID model.GameslotID) bool {
	g := w.Gameslot(gameslotID)
	return w.Location(g.Location).NumGamesByDate[g.Date] >= 2
}

// useWeekend reports whether a gameslot falls on a Friday or Saturday.
func useWeekend(w *model.World, gameslotID model.GameslotID) bool {
	weekday := w.Gameslot(gameslotID).Date.Weekday()
	return weekday == time.Friday || weekday == time.Saturday
}

// avoidConsecutiveDays reports whether placing matchup into gameslot would
// NOT create a back-to-back game day for either of its teams.
func avoidConsecutiveDays(w *model.World, matchupID model.MatchupID, gameslotID model.GameslotID) bool {
	m := w.Matchup(matchupID)
	date := w.Gameslot(gameslotID).Date
	before := date.AddDate(0, 0, -1)
	after := date.AddDate(0, 0, 1)

	for _, teamID := range [2]model.TeamID{m.TeamA, m.TeamB} {
		team := w.Team(teamID)
		if len(team.GamesByDate[before]) > 0 || len(team.GamesByDate[after]) > 0 {
			return false
		}
	}
	return true
}

// giveNonpreferredTeamHome reports whether a backup gameslot's location is
// either of the matchup's two teams' home location, so someone still plays
// at home even though the slot wasn't this matchup's preferred one.
func giveNonpreferredTeamHome(w *model.World, matchupID model.MatchupID, gameslotID model.GameslotID) bool {
	m := w.Matchup(matchupID)
	loc := w.Gameslot(gameslotID).Location
	return loc == w.Team(m.TeamA).HomeLocation || loc == w.Team(m.TeamB).HomeLocation
}

// slotAvailabilityScore counts matchup's preferred gameslots that are both
// unselected and still window-constraint-satisfiable; lower means more
// constrained, so it should be processed earlier.
func slotAvailabilityScore(w *model.World, matchupID model.MatchupID) int {
	m := w.Matchup(matchupID)
	score := 0
	for _, gameslotID := range m.PreferredGameslots {
		if w.Gameslot(gameslotID).SelectedMatchup != model.NoMatchup {
			continue
		}
		if w.WindowConstraintsSatisfied(matchupID, gameslotID) {
			score++
		}
	}
	return score
}

// currentHomePercentage is the fraction of team's matchups currently
// selected with team playing at its own home location.
func currentHomePercentage(w *model.World, teamID model.TeamID) float64 {
	team := w.Team(teamID)
	if len(team.Matchups) == 0 || team.HomeLocation == model.NoLocation {
		return 0
	}
	homeGames := 0
	for _, matchupID := range team.Matchups {
		m := w.Matchup(matchupID)
		if m.SelectedGameslot == model.NoGameslot {
			continue
		}
		if w.Gameslot(m.SelectedGameslot).Location == team.HomeLocation {
			homeGames++
		}
	}
	return float64(homeGames) / float64(len(team.Matchups))
}

const ratioEpsilon = 1e-4
