package model

import "math/rand"

// World is the single owned arena for a scheduling run: flat slices of every
// domain entity plus the one seeded RNG every shuffle and tie-break in the
// pipeline draws from, in a fixed traversal order, so a run is reproducible
// for a given seed.
type World struct {
	Teams            []Team
	Locations        []Location
	Gameslots        []Gameslot
	Matchups         []Matchup
	Blackouts        []Blackout
	Preassignments   []Preassignment
	WindowConstraints []WindowConstraint

	Rng *rand.Rand

	teamIndex     map[teamKey]TeamID
	locationIndex map[string]LocationID
}

type teamKey struct {
	division string
	name     string
}

// NewWorld builds an empty arena seeded for deterministic tie-breaking.
func NewWorld(seed int64) *World {
	return &World{
		Rng:           rand.New(rand.NewSource(seed)),
		teamIndex:     make(map[teamKey]TeamID),
		locationIndex: make(map[string]LocationID),
	}
}

// AddLocation registers a location by name, returning its handle. Calling it
// twice with the same name returns the existing handle.
func (w *World) AddLocation(name string, isScarce bool) LocationID {
	if id, ok := w.locationIndex[name]; ok {
		return id
	}
	id := LocationID(len(w.Locations))
	w.Locations = append(w.Locations, Location{
		Name:           name,
		IsScarce:       isScarce,
		NumGamesByDate: make(map[Date]int),
	})
	w.locationIndex[name] = id
	return id
}

// LocationByName looks up a previously registered location.
func (w *World) LocationByName(name string) (LocationID, bool) {
	id, ok := w.locationIndex[name]
	return id, ok
}

// AddTeam registers a team by (division, name), returning its handle.
func (w *World) AddTeam(division, name string, home LocationID) TeamID {
	id := TeamID(len(w.Teams))
	w.Teams = append(w.Teams, Team{
		Division:     division,
		Name:         name,
		HomeLocation: home,
		GamesByDate:  make(map[Date][]MatchupID),
	})
	w.teamIndex[teamKey{division, name}] = id
	return id
}

// TeamByName looks up a previously registered team within a division.
func (w *World) TeamByName(division, name string) (TeamID, bool) {
	id, ok := w.teamIndex[teamKey{division, name}]
	return id, ok
}

// AddGameslot registers a new gameslot and bumps its location's count.
func (w *World) AddGameslot(date Date, clock Clock, loc LocationID) GameslotID {
	id := GameslotID(len(w.Gameslots))
	w.Gameslots = append(w.Gameslots, Gameslot{
		Date:                       date,
		Time:                       clock,
		Location:                   loc,
		SelectedMatchup:            NoMatchup,
		MatchupsThatPreferThisSlot: make(map[MatchupID]bool),
	})
	w.Locations[loc].NumGameslots++
	return id
}

// AddMatchup registers a new matchup between two teams of the same
// division. Both teams' Matchups lists are updated.
func (w *World) AddMatchup(teamA, teamB TeamID) MatchupID {
	a, b := &w.Teams[teamA], &w.Teams[teamB]
	id := MatchupID(len(w.Matchups))
	w.Matchups = append(w.Matchups, Matchup{
		Division:          a.Division,
		TeamA:             teamA,
		TeamB:             teamB,
		PreferredHomeTeam: NoTeam,
		SelectedGameslot:  NoGameslot,
	})
	a.Matchups = append(a.Matchups, id)
	b.Matchups = append(b.Matchups, id)
	return id
}

// OtherTeam returns the matchup's other team given one of its two teams.
func (m *Matchup) OtherTeam(team TeamID) TeamID {
	if m.TeamA == team {
		return m.TeamB
	}
	return m.TeamA
}

// HasTeam reports whether the matchup includes the given team.
func (m *Matchup) HasTeam(team TeamID) bool {
	return m.TeamA == team || m.TeamB == team
}

// Team, Location, Gameslot, and Matchup return pointers into the arena for
// the given handle, so mutation never aliases a stale copy.
func (w *World) Team(id TeamID) *Team         { return &w.Teams[id] }
func (w *World) Location(id LocationID) *Location { return &w.Locations[id] }
func (w *World) Gameslot(id GameslotID) *Gameslot { return &w.Gameslots[id] }
func (w *World) Matchup(id MatchupID) *Matchup    { return &w.Matchups[id] }
