package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/leaguelens/leaguelens/internal/models"
	"github.com/leaguelens/leaguelens/internal/statmap"
)

// Lineup-slot ordering for normalized rosters: starters by position,
// flex, D/ST and kicker, then bench, with injured reserve always last.
// Unknown slots sort after every known slot, keeping source order among
// themselves (the sort below is stable).
var slotPriority = map[string]int{
	"QB":       1,
	"RB":       2,
	"WR":       3,
	"TE":       4,
	"RB/WR/TE": 5,
	"FLEX":     5,
	"RB/WR":    5,
	"WR/TE":    5,
	"OP":       6,
	"D/ST":     7,
	"K":        8,
	"BE":       9,
	"IR":       10,
}

const unknownSlotPriority = 99

// NormalizeRoster maps raw player records into fully-populated Player
// entities ordered by lineup-slot priority. Every player comes out with
// exactly one stat line per week in weekRange and complete season
// totals; missing source fields default to zero and are recorded on
// diag.
func NormalizeRoster(raw []models.RawPlayer, weekRange []int, diag *Diagnostics) []models.Player {
	players := make([]models.Player, 0, len(raw))
	for i := range raw {
		players = append(players, normalizePlayer(&raw[i], weekRange, diag))
	}

	sort.SliceStable(players, func(i, j int) bool {
		return slotRank(players[i].LineupSlot) < slotRank(players[j].LineupSlot)
	})

	return players
}

func slotRank(slot string) int {
	if rank, ok := slotPriority[slot]; ok {
		return rank
	}
	return unknownSlotPriority
}

func normalizePlayer(raw *models.RawPlayer, weekRange []int, diag *Diagnostics) models.Player {
	position := stringOr(raw.Position, "Unknown", "position", diag)
	proTeam := stringOr(raw.ProTeam, "", "proTeam", diag)

	player := models.Player{
		Name:            playerName(raw, proTeam, position, diag),
		PlayerID:        playerID(raw, proTeam, position, diag),
		Position:        position,
		PosRank:         intOr(raw.PosRank, 0, "posRank", diag),
		EligibleSlots:   raw.EligibleSlots,
		LineupSlot:      stringOr(raw.LineupSlot, "BE", "lineupSlot", diag),
		AcquisitionType: stringOr(raw.AcquisitionType, "", "acquisitionType", diag),
		ProTeam:         proTeam,
		InjuryStatus:    stringOr(raw.InjuryStatus, "ACTIVE", "injuryStatus", diag),
		Injured:         boolOr(raw.Injured, false),
		PercentOwned:    clamp(floatOr(raw.PercentOwned, 0, "percent_owned", diag), 0, 100),
		PercentStarted:  clamp(floatOr(raw.PercentStarted, 0, "percent_started", diag), 0, 100),
		Schedule:        raw.Schedule,
	}
	if player.EligibleSlots == nil {
		diag.RecordDefault("eligibleSlots")
		player.EligibleSlots = []string{}
	}
	if player.Schedule == nil {
		diag.RecordDefault("schedule")
		player.Schedule = map[string]*models.ScheduleEntry{}
	}

	sparse, preseason := splitWeeks(raw.Stats, diag)
	timeline := BuildTimeline(sparse, weekRange)

	provided := raw.SeasonTotals
	if provided == nil && preseason != nil {
		// The source parks season aggregates on pseudo-week "0".
		provided = &models.SeasonTotals{
			Points:             preseason.Points,
			ProjectedPoints:    preseason.ProjectedPoints,
			Breakdown:          preseason.Breakdown,
			ProjectedBreakdown: preseason.ProjectedBreakdown,
		}
	}
	totals := AggregateSeason(provided, timeline)
	if totals.AvgPoints == 0 && totals.Points > 0 {
		if active := activeWeeks(timeline); active > 0 {
			totals.AvgPoints = totals.Points / float64(active)
		}
	}
	player.SeasonTotals = &totals

	player.Stats = make(map[string]models.WeeklyStatLine, len(timeline))
	for _, entry := range timeline {
		countUnknownKeys(entry.Line.Breakdown, diag)
		player.Stats[strconv.Itoa(entry.Week)] = entry.Line
	}

	player.TotalPoints = floatOr(raw.TotalPoints, totals.Points, "total_points", diag)
	player.ProjectedTotalPoints = floatOr(raw.ProjectedTotalPoints, totals.ProjectedPoints, "projected_total_points", diag)
	player.AvgPoints = floatOr(raw.AvgPoints, totals.AvgPoints, "avg_points", diag)
	player.ProjectedAvgPoints = floatOr(raw.ProjectedAvgPoints, totals.ProjectedAvgPoints, "projected_avg_points", diag)

	player.HeadshotURL = headshotURL(raw, player.PlayerID, position, proTeam)

	return player
}

// PlayerTimeline rebuilds the ordered timeline from a normalized
// player's stats map for metric computation.
func PlayerTimeline(player *models.Player, weekRange []int) []WeekLine {
	sparse := make(map[int]models.WeeklyStatLine, len(player.Stats))
	for key, line := range player.Stats {
		week, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		sparse[week] = line
	}
	return BuildTimeline(sparse, weekRange)
}

// PlayerMetrics computes the derived metric set for a normalized player.
func PlayerMetrics(player *models.Player, weekRange []int) Metrics {
	timeline := PlayerTimeline(player, weekRange)
	return ComputeMetrics(timeline, player.TotalPoints, player.ProjectedTotalPoints, player.AvgPoints)
}

// splitWeeks parses the source's string week keys, separating the
// pseudo-week "0" aggregate from real game weeks. Unparseable keys are
// dropped and recorded.
func splitWeeks(stats map[string]models.WeeklyStatLine, diag *Diagnostics) (map[int]models.WeeklyStatLine, *models.WeeklyStatLine) {
	if stats == nil {
		diag.RecordDefault("stats")
		return map[int]models.WeeklyStatLine{}, nil
	}

	sparse := make(map[int]models.WeeklyStatLine, len(stats))
	var preseason *models.WeeklyStatLine
	for key, line := range stats {
		week, err := strconv.Atoi(key)
		if err != nil {
			diag.RecordDefault("stats.week")
			continue
		}
		if week == 0 {
			l := line
			preseason = &l
			continue
		}
		sparse[week] = line
	}
	return sparse, preseason
}

func activeWeeks(timeline []WeekLine) int {
	count := 0
	for _, entry := range timeline {
		if entry.Line.Points > 0 {
			count++
		}
	}
	return count
}

func countUnknownKeys(breakdown map[string]float64, diag *Diagnostics) {
	for key := range breakdown {
		if _, ok := statmap.Classify(key); !ok {
			diag.RecordUnknownStatKey()
		}
	}
}

func playerName(raw *models.RawPlayer, proTeam, position string, diag *Diagnostics) string {
	if raw.Name != nil && *raw.Name != "" {
		return *raw.Name
	}
	diag.RecordDefault("name")
	if position == "D/ST" && proTeam != "" {
		return proTeam + " D/ST"
	}
	return "Unknown"
}

// playerID falls back to a stable synthesized negative id for D/ST
// units, whose source records often omit a numeric id.
func playerID(raw *models.RawPlayer, proTeam, position string, diag *Diagnostics) int {
	if raw.PlayerID != nil {
		return *raw.PlayerID
	}
	diag.RecordDefault("playerId")
	if position == "D/ST" && proTeam != "" {
		// Position-weighted so abbreviations with equal character sums
		// ("DEN", "MIA") still get distinct ids.
		hash := 0
		for _, c := range proTeam {
			hash = hash*31 + int(c)
		}
		return -(1000 + hash)
	}
	return 0
}

func headshotURL(raw *models.RawPlayer, playerID int, position, proTeam string) string {
	if raw.HeadshotURL != nil && *raw.HeadshotURL != "" {
		return *raw.HeadshotURL
	}
	if position == "D/ST" {
		if proTeam != "" {
			return fmt.Sprintf("https://a.espncdn.com/i/teamlogos/nfl/500/%s.png", strings.ToLower(proTeam))
		}
		return ""
	}
	if playerID > 0 {
		return fmt.Sprintf("https://a.espncdn.com/i/headshots/nfl/players/full/%d.png", playerID)
	}
	return ""
}

func stringOr(v *string, def, field string, diag *Diagnostics) string {
	if v == nil {
		diag.RecordDefault(field)
		return def
	}
	return *v
}

func intOr(v *int, def int, field string, diag *Diagnostics) int {
	if v == nil {
		diag.RecordDefault(field)
		return def
	}
	return *v
}

func floatOr(v *float64, def float64, field string, diag *Diagnostics) float64 {
	if v == nil {
		diag.RecordDefault(field)
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
