package espn

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/leaguelens/leaguelens/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// FetchLeaguePayload pulls the league with team, roster, and standings
// views and assembles the raw payload the normalizer consumes. No
// defaulting happens here; absent source fields stay nil so the
// normalization boundary owns every defaulting decision.
func (a *API) FetchLeaguePayload(ctx context.Context) (*models.RawLeaguePayload, error) {
	var leagueResponse models.LeagueResponse
	endpoint := fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
	params := map[string]string{
		"view": "mTeam, mRoster, mStandings",
	}

	if err := a.client.Get(ctx, endpoint, params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}

	byeWeeks, err := a.GetProSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	payload := &models.RawLeaguePayload{
		LeagueID: a.client.Config.LeagueID,
		Rosters:  make(map[string][]models.RawPlayer, len(leagueResponse.Teams)),
	}
	if leagueResponse.Settings.Name != "" {
		payload.LeagueName = &leagueResponse.Settings.Name
	}

	for i := range leagueResponse.Teams {
		team := &leagueResponse.Teams[i]
		payload.Teams = append(payload.Teams, rawTeam(team))

		roster := make([]models.RawPlayer, 0, len(team.Roster.Entries))
		for j := range team.Roster.Entries {
			roster = append(roster, rawPlayer(&team.Roster.Entries[j], byeWeeks))
		}
		payload.Rosters[team.Name] = roster
	}

	payload.Standings = standingsOrder(payload.Teams, leagueResponse.Teams)

	return payload, nil
}

func rawTeam(team *models.ESPNTeam) models.RawTeam {
	overall := team.Record.Overall
	raw := models.RawTeam{
		TeamID:        &team.ID,
		Name:          &team.Name,
		Abbreviation:  &team.Abbreviation,
		Wins:          &overall.Wins,
		Losses:        &overall.Losses,
		Ties:          &overall.Ties,
		PointsFor:     &overall.PointsFor,
		PointsAgainst: &overall.PointsAgainst,
	}
	if team.Logo != "" {
		raw.LogoURL = &team.Logo
	}
	if overall.StreakType != "" {
		raw.StreakType = &overall.StreakType
		raw.StreakLength = &overall.StreakLength
	}
	if team.RankCalculatedFinal > 0 {
		raw.FinalStanding = &team.RankCalculatedFinal
	}
	return raw
}

// standingsOrder returns the raw teams reordered by playoff seed. With
// no seeds present the standings container is left empty and the
// normalizer ranks by record instead.
func standingsOrder(raw []models.RawTeam, teams []models.ESPNTeam) []models.RawTeam {
	seeded := false
	seedByID := make(map[int]int, len(teams))
	for _, t := range teams {
		if t.PlayoffSeed > 0 {
			seeded = true
		}
		seedByID[t.ID] = t.PlayoffSeed
	}
	if !seeded {
		return nil
	}

	standings := make([]models.RawTeam, len(raw))
	copy(standings, raw)
	sort.SliceStable(standings, func(i, j int) bool {
		return seedByID[*standings[i].TeamID] < seedByID[*standings[j].TeamID]
	})
	return standings
}

func rawPlayer(entry *models.RosterEntry, byeWeeks map[int]int) models.RawPlayer {
	player := entry.PlayerPoolEntry.Player
	position := positionName(player.DefaultPositionID)
	proTeam := proTeamName(player.ProTeamID)
	slot := lineupSlotName(entry.LineupSlotID)

	raw := models.RawPlayer{
		Position:       &position,
		ProTeam:        &proTeam,
		LineupSlot:     &slot,
		Injured:        &player.Injured,
		PercentOwned:   &player.Ownership.PercentOwned,
		PercentStarted: &player.Ownership.PercentStarted,
		Stats:          statLines(player.Stats),
		Schedule:       byeSchedule(player.ProTeamID, byeWeeks),
	}
	if player.FullName != "" {
		raw.Name = &player.FullName
	}
	if player.ID != 0 {
		id := player.ID
		raw.PlayerID = &id
	}
	if player.InjuryStatus != "" {
		raw.InjuryStatus = &player.InjuryStatus
	}
	if entry.AcquisitionType != "" {
		raw.AcquisitionType = &entry.AcquisitionType
	}
	for _, slotID := range player.EligibleSlots {
		raw.EligibleSlots = append(raw.EligibleSlots, lineupSlotName(slotID))
	}

	return raw
}

// statLines folds the flat stat entries into per-week lines: source 0
// is the actual line, source 1 the projection. Pseudo-week 0 carries
// the season aggregate and passes through for the normalizer to claim.
func statLines(stats []models.Stat) map[string]models.WeeklyStatLine {
	lines := make(map[string]models.WeeklyStatLine)
	for _, stat := range stats {
		week := strconv.Itoa(stat.ScoringPeriodID)
		statLine := lines[week]
		if statLine.Breakdown == nil {
			statLine.Breakdown = map[string]float64{}
			statLine.ProjectedBreakdown = map[string]float64{}
		}

		switch stat.StatSourceID {
		case 0:
			statLine.Points = stat.AppliedTotal
			statLine.Breakdown = namedStats(stat.AppliedStats)
		case 1:
			statLine.ProjectedPoints = stat.AppliedTotal
			statLine.ProjectedBreakdown = namedStats(stat.AppliedStats)
		default:
			continue
		}
		lines[week] = statLine
	}
	return lines
}

func byeSchedule(proTeamID int, byeWeeks map[int]int) map[string]*models.ScheduleEntry {
	bye, ok := byeWeeks[proTeamID]
	if !ok {
		return nil
	}
	// A nil entry marks the bye; opposing teams come from a view this
	// fetch does not request.
	return map[string]*models.ScheduleEntry{
		strconv.Itoa(bye): nil,
	}
}

type ProTeamInfo struct {
	ID      int    `json:"id"`
	Abbrev  string `json:"abbrev"`
	ByeWeek int    `json:"byeWeek"`
	Name    string `json:"name"`
}

func (a *API) GetProSchedule(ctx context.Context) (map[int]int, error) {
	var scheduleResponse struct {
		Settings struct {
			ProTeams []ProTeamInfo `json:"proTeams"`
		} `json:"settings"`
	}

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string]string{
		"view": "proTeamSchedules_wl",
	}

	if err := a.client.Get(ctx, endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	byeWeeks := make(map[int]int)
	for _, team := range scheduleResponse.Settings.ProTeams {
		if team.ByeWeek > 0 {
			byeWeeks[team.ID] = team.ByeWeek
		}
	}

	return byeWeeks, nil
}
