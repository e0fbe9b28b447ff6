package normalize

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/leaguelens/leaguelens/internal/models"
)

// ShapeError means the payload's top-level shape cannot support any
// normalization. It is the only condition that aborts a pass; every
// other irregularity is absorbed by defaulting.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("payload shape unusable: %s", e.Reason)
}

// Options control the canonical week range of a normalization pass.
type Options struct {
	FirstWeek int
	LastWeek  int
}

// DefaultOptions covers the standard 17-week fantasy regular season.
func DefaultOptions() Options {
	return Options{FirstWeek: 1, LastWeek: 17}
}

// Normalize turns a raw league payload into a complete LeagueSnapshot.
// It either returns a fully-populated snapshot or a *ShapeError; a
// partial snapshot is never produced.
func Normalize(payload *models.RawLeaguePayload, opts Options) (*models.LeagueSnapshot, error) {
	snapshot, _, err := NormalizeWithDiagnostics(payload, opts)
	return snapshot, err
}

// NormalizeWithDiagnostics is Normalize plus the record of every
// defaulting decision the pass applied.
func NormalizeWithDiagnostics(payload *models.RawLeaguePayload, opts Options) (*models.LeagueSnapshot, *Diagnostics, error) {
	if payload == nil {
		return nil, nil, &ShapeError{Reason: "payload is nil"}
	}
	if payload.Rosters == nil {
		return nil, nil, &ShapeError{Reason: "rosters container missing"}
	}

	diag := NewDiagnostics()
	weekRange := WeekRange(opts.FirstWeek, opts.LastWeek)

	snapshot := &models.LeagueSnapshot{
		LeagueID: payload.LeagueID,
		Rosters:  make(map[string][]models.Player, len(payload.Rosters)),
	}

	if payload.LeagueName != nil {
		snapshot.LeagueName = *payload.LeagueName
	} else {
		diag.RecordDefault("leagueName")
	}

	snapshot.Teams = normalizeTeams(payload.Teams, diag)
	if len(payload.Standings) > 0 {
		snapshot.Standings = normalizeTeams(payload.Standings, diag)
	} else {
		diag.RecordDefault("standings")
		snapshot.Standings = rankByRecord(snapshot.Teams)
	}
	assignStandings(snapshot.Standings)

	teamNames := make(map[string]bool, len(snapshot.Teams))
	for _, team := range snapshot.Teams {
		teamNames[team.Name] = true
	}

	for teamName, rawRoster := range payload.Rosters {
		if !teamNames[teamName] {
			// Tolerated, but worth surfacing: the roster references a
			// team the teams container does not carry.
			slog.Warn("roster team missing from teams container", "team", teamName)
		}
		snapshot.Rosters[teamName] = NormalizeRoster(rawRoster, weekRange, diag)
	}

	return snapshot, diag, nil
}

func normalizeTeams(raw []models.RawTeam, diag *Diagnostics) []models.Team {
	teams := make([]models.Team, 0, len(raw))
	for i := range raw {
		teams = append(teams, normalizeTeam(&raw[i], diag))
	}
	return teams
}

func normalizeTeam(raw *models.RawTeam, diag *Diagnostics) models.Team {
	return models.Team{
		TeamID:        intOr(raw.TeamID, 0, "team_id", diag),
		Name:          stringOr(raw.Name, "Unknown", "team_name", diag),
		Abbreviation:  stringOr(raw.Abbreviation, "", "team_abbrev", diag),
		DivisionName:  stringOr(raw.DivisionName, "", "division_name", diag),
		LogoURL:       stringOr(raw.LogoURL, "", "logo_url", diag),
		Wins:          intOr(raw.Wins, 0, "wins", diag),
		Losses:        intOr(raw.Losses, 0, "losses", diag),
		Ties:          intOr(raw.Ties, 0, "ties", diag),
		PointsFor:     floatOr(raw.PointsFor, 0, "points_for", diag),
		PointsAgainst: floatOr(raw.PointsAgainst, 0, "points_against", diag),
		Standing:      intOr(raw.Standing, 0, "standing", diag),
		FinalStanding: intOr(raw.FinalStanding, 0, "final_standing", diag),
		PlayoffPct:    clamp(floatOr(raw.PlayoffPct, 0, "playoff_pct", diag), 0, 100),
		StreakType:    stringOr(raw.StreakType, "", "streak_type", diag),
		StreakLength:  intOr(raw.StreakLength, 0, "streak_length", diag),
	}
}

// rankByRecord orders a copy of the teams by wins then points-for.
// Ties keep source order; the sort is stable.
func rankByRecord(teams []models.Team) []models.Team {
	ranked := make([]models.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].PointsFor > ranked[j].PointsFor
	})
	return ranked
}

// assignStandings gives every standings entry a unique positive rank in
// list order, preserving a source-provided ordering as-is.
func assignStandings(standings []models.Team) {
	for i := range standings {
		standings[i].Standing = i + 1
	}
}
