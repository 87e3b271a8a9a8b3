package model

// Prohibits reports whether this blackout forbids either team of the
// matchup from playing in the given gameslot. Empty Division/TeamName are
// wildcards, nil Start/End mean "from/until start/end of day".
func (b *Blackout) Prohibits(w *World, matchupID MatchupID, gameslotID GameslotID) bool {
	m := w.Matchup(matchupID)
	return b.ProhibitsTeam(w, m.TeamA, gameslotID) || b.ProhibitsTeam(w, m.TeamB, gameslotID)
}

// ProhibitsTeam reports whether this blackout forbids the given team from
// playing in the given gameslot.
func (b *Blackout) ProhibitsTeam(w *World, teamID TeamID, gameslotID GameslotID) bool {
	team := w.Team(teamID)
	g := w.Gameslot(gameslotID)

	if !g.Date.Equal(b.Date) {
		return false
	}
	if b.TeamName != "" && b.TeamName != team.Name {
		return false
	}
	if b.Division != "" && b.Division != team.Division {
		return false
	}
	return b.timeWithinRange(g.Time)
}

func (b *Blackout) timeWithinRange(clock Clock) bool {
	if b.Start == nil && b.End == nil {
		return true
	}
	if b.Start == nil {
		return clock <= *b.End
	}
	if b.End == nil {
		return clock >= *b.Start
	}
	return *b.Start <= clock && clock <= *b.End
}

// AnyProhibits reports whether any blackout in the world prohibits the
// matchup from playing in the given gameslot.
func (w *World) AnyProhibits(matchupID MatchupID, gameslotID GameslotID) bool {
	for i := range w.Blackouts {
		if w.Blackouts[i].Prohibits(w, matchupID, gameslotID) {
			return true
		}
	}
	return false
}
