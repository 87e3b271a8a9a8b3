// Package csvio ingests the CSV record kinds the core scheduling engine
// consumes: read the header, validate its exact shape, then decode rows
// one at a time, failing fast with a descriptive error on the first
// malformed row.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/derekprior/leagueforge/internal/model"
)

const (
	noneLocation = "NONE"
	wildcardAll  = "ALL"
	openEnded    = "-"
)

// IngestAll reads teams.csv, matchups.csv, gameslots.csv, and blackouts.csv
// from dir into w. preassignments.csv is read separately by
// IngestPreassignments since it is applied later, by the preprocessor.
func IngestAll(dir string, w *model.World) error {
	if err := ingestTeams(filepath.Join(dir, "teams.csv"), w); err != nil {
		return err
	}
	if err := ingestMatchups(filepath.Join(dir, "matchups.csv"), w); err != nil {
		return err
	}
	if err := ingestGameslots(filepath.Join(dir, "gameslots.csv"), w); err != nil {
		return err
	}
	if err := ingestBlackouts(filepath.Join(dir, "blackouts.csv"), w); err != nil {
		return err
	}
	return nil
}

func openRows(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s must contain at least 1 line (a header)", path)
	}

	header := rows[0]
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%s should have %d columns: %v", path, len(wantHeader), wantHeader)
	}
	for i, name := range wantHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%s should have columns %v", path, wantHeader)
		}
	}

	return rows[1:], nil
}

func ingestTeams(path string, w *model.World) error {
	rows, err := openRows(path, []string{"division", "name", "home_location"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != 3 {
			return fmt.Errorf("%s row %d: expected 3 columns, got %d", path, i+2, len(row))
		}
		division, name, homeLocationName := row[0], row[1], row[2]

		home := model.NoLocation
		if homeLocationName != noneLocation {
			home = w.AddLocation(homeLocationName, false)
		}

		if _, exists := w.TeamByName(division, name); exists {
			return fmt.Errorf("%s row %d: team %q already defined in division %q", path, i+2, name, division)
		}
		w.AddTeam(division, name, home)
	}
	return nil
}

func ingestMatchups(path string, w *model.World) error {
	rows, err := openRows(path, []string{"division", "team_a", "team_b"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != 3 {
			return fmt.Errorf("%s row %d: expected 3 columns, got %d", path, i+2, len(row))
		}
		division, nameA, nameB := row[0], row[1], row[2]

		if nameA == nameB {
			return fmt.Errorf("%s row %d: matchup of %q against itself", path, i+2, nameA)
		}

		teamA, ok := w.TeamByName(division, nameA)
		if !ok {
			return fmt.Errorf("%s row %d: unknown team %q in division %q", path, i+2, nameA, division)
		}
		teamB, ok := w.TeamByName(division, nameB)
		if !ok {
			return fmt.Errorf("%s row %d: unknown team %q in division %q", path, i+2, nameB, division)
		}

		w.AddMatchup(teamA, teamB)
	}
	return nil
}

func ingestGameslots(path string, w *model.World) error {
	rows, err := openRows(path, []string{"date", "time", "location"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != 3 {
			return fmt.Errorf("%s row %d: expected 3 columns, got %d", path, i+2, len(row))
		}
		date, err := ParseDate(row[0])
		if err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		clock, err := ParseClock(row[1])
		if err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		loc := w.AddLocation(row[2], false)
		w.AddGameslot(date, clock, loc)
	}
	return nil
}

func ingestBlackouts(path string, w *model.World) error {
	rows, err := openRows(path, []string{"date", "start", "end", "division", "team"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if len(row) != 5 {
			return fmt.Errorf("%s row %d: expected 5 columns, got %d", path, i+2, len(row))
		}
		date, err := ParseDate(row[0])
		if err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+2, err)
		}

		start, err := parseOpenEndedClock(row[1])
		if err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		end, err := parseOpenEndedClock(row[2])
		if err != nil {
			return fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		if start != nil && end != nil && *start > *end {
			return fmt.Errorf("%s row %d: start time after end time", path, i+2)
		}

		division := row[3]
		if division == wildcardAll {
			division = ""
		}
		team := row[4]
		if team == wildcardAll {
			team = ""
		}

		w.Blackouts = append(w.Blackouts, model.Blackout{
			Date:     date,
			Start:    start,
			End:      end,
			Division: division,
			TeamName: team,
		})
	}
	return nil
}

// IngestPreassignments reads preassignments.csv, returning an empty slice
// (not an error) if the file does not exist, since preassignments are
// optional.
func IngestPreassignments(path string) ([]model.Preassignment, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	rows, err := openRows(path, []string{"date", "time", "location", "division", "team_a", "team_b"})
	if err != nil {
		return nil, err
	}

	var out []model.Preassignment
	for i, row := range rows {
		if len(row) != 6 {
			return nil, fmt.Errorf("%s row %d: expected 6 columns, got %d", path, i+2, len(row))
		}
		date, err := ParseDate(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		clock, err := ParseClock(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		out = append(out, model.Preassignment{
			Date:     date,
			Time:     clock,
			Location: row[2],
			Division: row[3],
			TeamA:    row[4],
			TeamB:    row[5],
		})
	}
	return out, nil
}

func parseOpenEndedClock(s string) (*model.Clock, error) {
	if s == openEnded {
		return nil, nil
	}
	c, err := ParseClock(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
