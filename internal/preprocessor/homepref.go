package preprocessor

import (
	"math"
	"sort"

	"github.com/derekprior/leagueforge/internal/model"
)

// ChoosePreferredHomeTeams groups matchups by division and then by
// unordered team pair; groups are visited in a stable sorted order so that
// leftover-matchup tie-breaks, which read a cross-group running ratio, are
// reproducible for a given seed. Iteration order was otherwise undefined,
// so this fixes it to a deterministic sort.
func ChoosePreferredHomeTeams(w *model.World) error {
	for _, group := range sortedPairGroups(w) {
		if err := processGroup(w, group); err != nil {
			return err
		}
	}
	return nil
}

type pairGroup struct {
	division string
	teamA    model.TeamID // lower-sorted team name
	teamB    model.TeamID
	matchups []model.MatchupID
}

func sortedPairGroups(w *model.World) []pairGroup {
	type key struct {
		division   string
		nameA      string
		nameB      string
	}
	groupsByKey := make(map[key]*pairGroup)
	var keys []key

	for i := range w.Matchups {
		m := &w.Matchups[i]
		teamA, teamB := w.Team(m.TeamA), w.Team(m.TeamB)
		nameA, nameB, idA, idB := teamA.Name, teamB.Name, m.TeamA, m.TeamB
		if nameA > nameB {
			nameA, nameB, idA, idB = nameB, nameA, idB, idA
		}
		k := key{m.Division, nameA, nameB}
		g, ok := groupsByKey[k]
		if !ok {
			g = &pairGroup{division: m.Division, teamA: idA, teamB: idB}
			groupsByKey[k] = g
			keys = append(keys, k)
		}
		g.matchups = append(g.matchups, model.MatchupID(i))
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].division != keys[j].division {
			return keys[i].division < keys[j].division
		}
		if keys[i].nameA != keys[j].nameA {
			return keys[i].nameA < keys[j].nameA
		}
		return keys[i].nameB < keys[j].nameB
	})

	groups := make([]pairGroup, len(keys))
	for i, k := range keys {
		groups[i] = *groupsByKey[k]
	}
	return groups
}

func processGroup(w *model.World, group pairGroup) error {
	teamA, teamB := group.teamA, group.teamB

	var preassignedAmbiguous []model.MatchupID
	var nonPreassigned []model.MatchupID
	countA, countB := 0, 0

	// Step B1: preassigned matchups whose preselected location is one
	// team's home record that team as preferred home immediately.
	for _, matchupID := range group.matchups {
		m := w.Matchup(matchupID)
		if !m.IsPreassigned {
			nonPreassigned = append(nonPreassigned, matchupID)
			continue
		}

		loc := w.Gameslot(m.SelectedGameslot).Location
		switch loc {
		case w.Team(teamA).HomeLocation:
			if err := w.SelectPreferredHomeTeam(matchupID, teamA); err != nil {
				return err
			}
			countA++
		case w.Team(teamB).HomeLocation:
			if err := w.SelectPreferredHomeTeam(matchupID, teamB); err != nil {
				return err
			}
			countB++
		default:
			preassignedAmbiguous = append(preassignedAmbiguous, matchupID)
		}
	}

	// Step B2: compensate so that group home counts converge.
	diff := countA - countB
	if diff < 0 {
		diff = -diff
	}
	lowTeam := teamA
	if countA > countB {
		lowTeam = teamB
	}
	taken := 0
	for taken < diff && len(nonPreassigned) > 0 {
		matchupID := nonPreassigned[0]
		nonPreassigned = nonPreassigned[1:]
		if err := w.SelectPreferredHomeTeam(matchupID, lowTeam); err != nil {
			return err
		}
		taken++
	}

	// Step B3: pair up and alternate the remainder.
	alternateIdx := 0
	for len(nonPreassigned) >= 2 {
		first, second := nonPreassigned[0], nonPreassigned[1]
		nonPreassigned = nonPreassigned[2:]

		var firstTeam, secondTeam model.TeamID
		if alternateIdx%2 == 0 {
			firstTeam, secondTeam = teamA, teamB
		} else {
			firstTeam, secondTeam = teamB, teamA
		}
		if err := w.SelectPreferredHomeTeam(first, firstTeam); err != nil {
			return err
		}
		if err := w.SelectPreferredHomeTeam(second, secondTeam); err != nil {
			return err
		}
		alternateIdx++
	}

	// Step B4: exactly one non-preassigned matchup left over.
	for _, matchupID := range nonPreassigned {
		chosen := lowerRatioTeamWithTiebreak(w, teamA, teamB)
		if err := w.SelectPreferredHomeTeam(matchupID, chosen); err != nil {
			return err
		}
	}

	// Step B5: preassigned matchups whose location matched neither team's
	// home get a cosmetic preferred home team via the same rule.
	for _, matchupID := range preassignedAmbiguous {
		chosen := lowerRatioTeamWithTiebreak(w, teamA, teamB)
		if err := w.SelectPreferredHomeTeam(matchupID, chosen); err != nil {
			return err
		}
	}

	return nil
}

// lowerRatioTeamWithTiebreak picks the team with the lower current
// preferred-home ratio (num_preferred_home_games / matchups with a home
// preference chosen), breaking ties with the world's seeded RNG.
func lowerRatioTeamWithTiebreak(w *model.World, teamA, teamB model.TeamID) model.TeamID {
	ratioA := w.Team(teamA).HomePreferenceRatio()
	ratioB := w.Team(teamB).HomePreferenceRatio()

	const epsilon = 1e-4
	if math.Abs(ratioA-ratioB) < epsilon {
		if w.Rng.Intn(2) == 0 {
			return teamA
		}
		return teamB
	}
	if ratioA < ratioB {
		return teamA
	}
	return teamB
}
