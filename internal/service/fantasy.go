package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/leaguelens/leaguelens/internal/models"
	"github.com/leaguelens/leaguelens/internal/normalize"
)

// ErrNoSnapshot means no connect pass has stored a snapshot yet.
var ErrNoSnapshot = errors.New("no league snapshot available; connect a league first")

// SnapshotStore is the persisted key-value handoff between the connect
// flow and every consumer surface.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snapshot *models.LeagueSnapshot) error
	GetSnapshot(ctx context.Context) (*models.LeagueSnapshot, error)
}

// LeagueFetcher produces the raw league payload from upstream.
type LeagueFetcher interface {
	FetchLeaguePayload(ctx context.Context) (*models.RawLeaguePayload, error)
}

type FantasyService struct {
	fetcher LeagueFetcher
	store   SnapshotStore
	opts    normalize.Options
}

func NewFantasyService(fetcher LeagueFetcher, store SnapshotStore, opts normalize.Options) *FantasyService {
	return &FantasyService{fetcher: fetcher, store: store, opts: opts}
}

// Refresh runs the full connect flow: fetch the raw payload, normalize
// it, and replace the stored snapshot.
func (s *FantasyService) Refresh(ctx context.Context) (*models.LeagueSnapshot, error) {
	payload, err := s.fetcher.FetchLeaguePayload(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching league payload: %w", err)
	}
	return s.Connect(ctx, payload)
}

// Connect normalizes an already-fetched payload and stores the result.
// A ShapeError from normalization propagates untouched so callers can
// classify it.
func (s *FantasyService) Connect(ctx context.Context, payload *models.RawLeaguePayload) (*models.LeagueSnapshot, error) {
	snapshot, diag, err := normalize.NormalizeWithDiagnostics(payload, s.opts)
	if err != nil {
		return nil, err
	}

	if len(diag.DefaultedFields) > 0 || diag.UnknownStatKeys > 0 {
		slog.Info("normalization applied defaults",
			"fields", len(diag.DefaultedFields),
			"unknown_stat_keys", diag.UnknownStatKeys)
	}

	if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("storing snapshot: %w", err)
	}

	slog.Info("league snapshot stored", "league", snapshot.LeagueName, "teams", len(snapshot.Teams))
	return snapshot, nil
}

// Snapshot returns the current stored snapshot.
func (s *FantasyService) Snapshot(ctx context.Context) (*models.LeagueSnapshot, error) {
	snapshot, err := s.store.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return snapshot, nil
}

func (s *FantasyService) GetStandings(ctx context.Context) (string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 *%s Standings*\n\n", snapshot.LeagueName))
	for _, team := range snapshot.Standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Standing, team.Name))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}

	return sb.String(), nil
}

// FindTeam resolves a team by fuzzy name match over the snapshot.
func (s *FantasyService) FindTeam(ctx context.Context, teamName string) (*models.Team, []models.Player, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	var bestMatch *models.Team
	bestScore := -1.0
	threshold := 0.6

	for i, team := range snapshot.Teams {
		similarity := nameSimilarity(teamName, team.Name)
		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			bestMatch = &snapshot.Teams[i]
		}
	}

	if bestMatch == nil {
		return nil, nil, fmt.Errorf("team not found: %s", teamName)
	}
	return bestMatch, snapshot.Rosters[bestMatch.Name], nil
}

func (s *FantasyService) GetTeamRoster(ctx context.Context, teamName string) (string, error) {
	team, roster, err := s.FindTeam(ctx, teamName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Roster*\n\n", team.Name))

	sb.WriteString("*Starting Lineup:*\n")
	for _, player := range roster {
		if isStarter(player.LineupSlot) {
			writeRosterLine(&sb, &player)
		}
	}

	sb.WriteString("\n*Bench:*\n")
	for _, player := range roster {
		if !isStarter(player.LineupSlot) {
			writeRosterLine(&sb, &player)
		}
	}

	return sb.String(), nil
}

func isStarter(slot string) bool {
	return slot != "BE" && slot != "IR" && slot != "Unknown"
}

func writeRosterLine(sb *strings.Builder, player *models.Player) {
	injuryStr := ""
	if abbr, ok := injuryAbbrevs[player.InjuryStatus]; ok {
		injuryStr = fmt.Sprintf(" (%s)", abbr)
	}
	sb.WriteString(fmt.Sprintf("▫️ %s %s%s - %.2f pts (avg %.2f)\n",
		player.Position, player.Name, injuryStr, player.TotalPoints, player.AvgPoints))
}

var injuryAbbrevs = map[string]string{
	"QUESTIONABLE": "Q",
	"DOUBTFUL":     "D",
	"OUT":          "O",
}

// FindPlayer resolves a player by fuzzy name match across every roster,
// returning the owning team name as well.
func (s *FantasyService) FindPlayer(ctx context.Context, playerName string) (*models.Player, string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	var bestMatch *models.Player
	bestTeam := ""
	bestScore := -1.0
	threshold := 0.7

	for teamName, roster := range snapshot.Rosters {
		for i, player := range roster {
			similarity := nameSimilarity(playerName, player.Name)
			if similarity > threshold && similarity > bestScore {
				bestScore = similarity
				bestMatch = &roster[i]
				bestTeam = teamName
			}
		}
	}

	if bestMatch == nil {
		return nil, "", fmt.Errorf("player not found: %s", playerName)
	}
	return bestMatch, bestTeam, nil
}

func nameSimilarity(query, candidate string) float64 {
	query = strings.ToLower(query)
	candidate = strings.ToLower(candidate)
	distance := fuzzy.LevenshteinDistance(query, candidate)
	maxLen := len(query)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/float64(maxLen)
}

func (s *FantasyService) WhoHas(ctx context.Context, playerName string) (string, error) {
	player, teamName, err := s.FindPlayer(ctx, playerName)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return "", err
		}
		return fmt.Sprintf("🔍 No player found matching '%s'.", playerName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", player.Name, player.Position, player.ProTeam))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("*%s*\n", teamName))
	if isStarter(player.LineupSlot) {
		sb.WriteString("Starting\n")
	} else {
		sb.WriteString(fmt.Sprintf("%s\n", player.LineupSlot))
	}
	sb.WriteString(fmt.Sprintf("\n%.2f pts", player.TotalPoints))
	sb.WriteString(fmt.Sprintf("\n%0.1f%% Rostered", player.PercentOwned))

	return sb.String(), nil
}

// PlayerCard formats a player with their derived performance metrics.
func (s *FantasyService) PlayerCard(ctx context.Context, playerName string) (string, error) {
	player, teamName, err := s.FindPlayer(ctx, playerName)
	if err != nil {
		if errors.Is(err, ErrNoSnapshot) {
			return "", err
		}
		return fmt.Sprintf("🔍 No player found matching '%s'.", playerName), nil
	}

	weekRange := normalize.WeekRange(s.opts.FirstWeek, s.opts.LastWeek)
	metrics := normalize.PlayerMetrics(player, weekRange)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", player.Name, player.Position, player.ProTeam))
	sb.WriteString(fmt.Sprintf("Team: %s | Slot: %s\n", teamName, player.LineupSlot))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	sb.WriteString(fmt.Sprintf("Total: %.2f pts (proj %.2f)\n", player.TotalPoints, player.ProjectedTotalPoints))
	sb.WriteString(fmt.Sprintf("Average: %.2f pts/week\n", player.AvgPoints))
	sb.WriteString(fmt.Sprintf("vs Projection: %+.1f%%\n", metrics.VsProjectionPct))
	sb.WriteString(fmt.Sprintf("Consistency: %.0f/100\n", metrics.ConsistencyScore))
	sb.WriteString(fmt.Sprintf("Floor / Ceiling: %.2f / %.2f\n", metrics.Floor, metrics.Ceiling))
	sb.WriteString(fmt.Sprintf("Beat Projection: %d weeks\n", metrics.BeatProjectionCount))

	return sb.String(), nil
}

// SearchPlayers filters the snapshot's players by optional name,
// position, and pro team, ordered by total points.
func (s *FantasyService) SearchPlayers(ctx context.Context, name, position, proTeam string, limit int) ([]models.Player, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var results []models.Player
	for _, roster := range snapshot.Rosters {
		for _, player := range roster {
			if name != "" && !fuzzy.MatchFold(name, player.Name) {
				continue
			}
			if position != "" && player.Position != position {
				continue
			}
			if proTeam != "" && player.ProTeam != proTeam {
				continue
			}
			results = append(results, player)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalPoints > results[j].TotalPoints
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// PlayerByID looks up a rostered player by ESPN player ID and returns
// the player, the owning team name, and the derived scoring metrics.
func (s *FantasyService) PlayerByID(ctx context.Context, playerID int) (*models.Player, string, normalize.Metrics, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, "", normalize.Metrics{}, err
	}

	for teamName, roster := range snapshot.Rosters {
		for i, player := range roster {
			if player.PlayerID == playerID {
				weekRange := normalize.WeekRange(s.opts.FirstWeek, s.opts.LastWeek)
				metrics := normalize.PlayerMetrics(&roster[i], weekRange)
				return &roster[i], teamName, metrics, nil
			}
		}
	}
	return nil, "", normalize.Metrics{}, fmt.Errorf("player not found: %d", playerID)
}
