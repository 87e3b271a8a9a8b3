// Package validator re-derives constraint violations from a previously
// generated workbook: it reads the Master Schedule sheet back and re-runs
// the checks against model.Blackout.Prohibits and
// model.WindowConstraint.SatisfiedBySelection, so a hand-edited workbook is
// checked by the exact same constraint code the solver used to build it in
// the first place.
package validator

import (
	"fmt"
	"sort"

	"github.com/derekprior/leagueforge/internal/csvio"
	"github.com/derekprior/leagueforge/internal/model"
	"github.com/xuri/excelize/v2"
)

// Violation is one constraint breach found while re-checking a workbook.
type Violation struct {
	Row     int
	Type    string // "error" or "warning"
	Message string
}

// Validate opens path, reads back its Master Schedule sheet, and replays
// the resulting games into base (a World already populated with teams,
// locations, blackouts, and window constraints from CSV) to check each one
// against the live constraint code. Each workbook game is added to base as
// a new matchup and gameslot and selected; any matchups or gameslots base
// already holds stay unselected and do not affect the checks.
//
// It assumes base's Locations were registered in the same order as the
// workbook's location columns — true whenever generate and validate are run
// against the same input directory, which is the only supported workflow.
func Validate(base *model.World, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Master Schedule")
	if err != nil {
		return nil, fmt.Errorf("reading Master Schedule: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Master Schedule is empty")
	}

	teamsByName := make(map[string]model.TeamID, len(base.Teams))
	for i := range base.Teams {
		teamsByName[base.Teams[i].Name] = model.TeamID(i)
	}

	var violations []Violation
	seenTeam := make(map[model.TeamID]bool)

	for rowIndex, row := range rows {
		if rowIndex == 0 || len(row) < 3 || row[0] == "" {
			continue
		}

		date, err := csvio.ParseDate(row[0])
		if err != nil {
			violations = append(violations, Violation{
				Row: rowIndex + 1, Type: "error",
				Message: fmt.Sprintf("unreadable date %q", row[0]),
			})
			continue
		}
		clock, err := csvio.ParseClock(row[2])
		if err != nil {
			violations = append(violations, Violation{
				Row: rowIndex + 1, Type: "error",
				Message: fmt.Sprintf("unreadable time %q", row[2]),
			})
			continue
		}

		for locIndex := range base.Locations {
			col := locIndex + 3
			if col >= len(row) || row[col] == "" {
				continue
			}
			away, home, ok := parseGameCell(row[col])
			if !ok {
				continue // blackout/reservation text, not a game
			}

			homeID, homeOK := teamsByName[home]
			awayID, awayOK := teamsByName[away]
			if !homeOK || !awayOK {
				violations = append(violations, Violation{
					Row: rowIndex + 1, Type: "error",
					Message: fmt.Sprintf("unknown team in cell %q", row[col]),
				})
				continue
			}

			gameslotID := base.AddGameslot(date, clock, model.LocationID(locIndex))
			matchupID := base.AddMatchup(homeID, awayID)
			seenTeam[homeID] = true
			seenTeam[awayID] = true

			if base.AnyProhibits(matchupID, gameslotID) {
				violations = append(violations, Violation{
					Row: rowIndex + 1, Type: "error",
					Message: fmt.Sprintf("%s vs %s on %s falls inside a blackout", home, away, row[0]),
				})
			}
			if !base.WindowConstraintsSatisfied(matchupID, gameslotID) {
				violations = append(violations, Violation{
					Row: rowIndex + 1, Type: "error",
					Message: fmt.Sprintf("%s vs %s on %s exceeds a window constraint", home, away, row[0]),
				})
			}

			if err := base.SelectGameslot(matchupID, gameslotID); err != nil {
				return nil, fmt.Errorf("replaying workbook game at row %d: %w", rowIndex+1, err)
			}
		}
	}

	for i := range base.Teams {
		teamID := model.TeamID(i)
		if !seenTeam[teamID] {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("%s has no games scheduled", base.Teams[i].Name),
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool { return violations[i].Row < violations[j].Row })
	return violations, nil
}

// parseGameCell parses "Away @ Home" and returns (away, home, true).
// Returns ("", "", false) if the cell doesn't match the game format.
func parseGameCell(cell string) (away, home string, ok bool) {
	for i := 0; i < len(cell)-2; i++ {
		if cell[i] == ' ' && cell[i+1] == '@' && cell[i+2] == ' ' {
			return cell[:i], cell[i+3:], true
		}
	}
	return "", "", false
}
