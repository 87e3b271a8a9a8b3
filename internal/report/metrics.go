// Package report derives soft-quality metrics from a solved World and
// renders both the printable tables and the pasteable text dump. It only
// reads World state; nothing here mutates an assignment.
package report

import (
	"sort"
	"time"

	"github.com/derekprior/leagueforge/internal/model"
)

// NonPreferredGame names a matchup whose final selection landed on a
// non-preferred (backup) gameslot.
type NonPreferredGame struct {
	Division string
	TeamA    string
	TeamB    string
	Date     model.Date
	Location string
}

// ConsecutiveGamePair names a team with selected games on two calendar days
// in a row.
type ConsecutiveGamePair struct {
	Division string
	Team     string
	First    model.Date
	Second   model.Date
}

// LongestGap names the team with the widest span, in days, between two
// selected games that are its nearest neighbors in time. Zero value (Days
// == 0) means no team has selected games on two or more distinct dates.
type LongestGap struct {
	Division string
	Team     string
	Days      int
	From, To model.Date
}

// Metrics is the full set of derived quality quantities for one solved
// World.
type Metrics struct {
	// BlockSizeHistogram maps block size (games sharing a date+location) to
	// the number of blocks of that size. Dates/locations with zero selected
	// games are not blocks and do not appear.
	BlockSizeHistogram map[int]int

	NonPreferredLocations []NonPreferredGame
	WeekdayCounts         map[time.Weekday]int
	ConsecutivePairs      []ConsecutiveGamePair
	LongestGap            LongestGap
}

// Compute derives every metric by walking the World's current selections.
// It is safe to call at any point after the solver and post-processor have
// run.
func Compute(w *model.World) Metrics {
	m := Metrics{
		BlockSizeHistogram: make(map[int]int),
		WeekdayCounts:      make(map[time.Weekday]int),
	}

	blockSizes := make(map[dateLocationKey]int)
	for i := range w.Gameslots {
		g := &w.Gameslots[i]
		if g.SelectedMatchup == model.NoMatchup {
			continue
		}
		blockSizes[dateLocationKey{g.Date, g.Location}]++
		m.WeekdayCounts[g.Date.Weekday()]++
	}
	for _, size := range blockSizes {
		m.BlockSizeHistogram[size]++
	}

	for i := range w.Matchups {
		mm := &w.Matchups[i]
		if mm.SelectedGameslot == model.NoGameslot {
			continue
		}
		if mm.SelectedGameslotIsPreferred {
			continue
		}
		g := w.Gameslot(mm.SelectedGameslot)
		m.NonPreferredLocations = append(m.NonPreferredLocations, NonPreferredGame{
			Division: mm.Division,
			TeamA:    w.Team(mm.TeamA).Name,
			TeamB:    w.Team(mm.TeamB).Name,
			Date:     g.Date,
			Location: w.Location(g.Location).Name,
		})
	}
	sort.Slice(m.NonPreferredLocations, func(i, j int) bool {
		return m.NonPreferredLocations[i].Date.Before(m.NonPreferredLocations[j].Date)
	})

	for i := range w.Teams {
		t := &w.Teams[i]
		dates := sortedDates(t.GamesByDate)
		for d := 1; d < len(dates); d++ {
			if dates[d].Sub(dates[d-1]) == 24*time.Hour {
				m.ConsecutivePairs = append(m.ConsecutivePairs, ConsecutiveGamePair{
					Division: t.Division,
					Team:     t.Name,
					First:    dates[d-1],
					Second:   dates[d],
				})
			}
		}
		for d := 1; d < len(dates); d++ {
			gap := int(dates[d].Sub(dates[d-1]).Hours() / 24)
			if gap > m.LongestGap.Days {
				m.LongestGap = LongestGap{
					Division: t.Division,
					Team:     t.Name,
					Days:     gap,
					From:     dates[d-1],
					To:       dates[d],
				}
			}
		}
	}

	return m
}

type dateLocationKey struct {
	date model.Date
	loc  model.LocationID
}

// sortedDates returns the dates with at least one game, sorted ascending.
// DeselectGameslot leaves an empty slice behind under a date key rather
// than deleting it, so an empty entry here does not mean the team has a
// game that day.
func sortedDates(byDate map[model.Date][]model.MatchupID) []model.Date {
	dates := make([]model.Date, 0, len(byDate))
	for d, matchups := range byDate {
		if len(matchups) == 0 {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
