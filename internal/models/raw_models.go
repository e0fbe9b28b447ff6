package models

// RawLeaguePayload is the loosely-typed league export consumed by the
// normalizer. Every scalar is a pointer so that "absent" and "zero" stay
// distinguishable until defaulting happens at the normalization
// boundary. Unrecognized fields are ignored on decode.
type RawLeaguePayload struct {
	LeagueName *string                `json:"leagueName"`
	LeagueID   string                 `json:"leagueId"`
	Standings  []RawTeam              `json:"standings"`
	Teams      []RawTeam              `json:"teams"`
	Rosters    map[string][]RawPlayer `json:"rosters"`
}

type RawTeam struct {
	TeamID        *int     `json:"team_id"`
	Name          *string  `json:"team_name"`
	Abbreviation  *string  `json:"team_abbrev"`
	DivisionName  *string  `json:"division_name"`
	LogoURL       *string  `json:"logo_url"`
	Wins          *int     `json:"wins"`
	Losses        *int     `json:"losses"`
	Ties          *int     `json:"ties"`
	PointsFor     *float64 `json:"points_for"`
	PointsAgainst *float64 `json:"points_against"`
	Standing      *int     `json:"standing"`
	FinalStanding *int     `json:"final_standing"`
	PlayoffPct    *float64 `json:"playoff_pct"`
	StreakType    *string  `json:"streak_type"`
	StreakLength  *int     `json:"streak_length"`
}

// RawPlayer mirrors the per-player record of the league export. Weekly
// stats are keyed by week identifier ("0" is the source's season-total
// pseudo-week, "1".."17" are game weeks).
type RawPlayer struct {
	Name                 *string                   `json:"name"`
	PlayerID             *int                      `json:"playerId"`
	Position             *string                   `json:"position"`
	PosRank              *int                      `json:"posRank"`
	EligibleSlots        []string                  `json:"eligibleSlots"`
	LineupSlot           *string                   `json:"lineupSlot"`
	AcquisitionType      *string                   `json:"acquisitionType"`
	ProTeam              *string                   `json:"proTeam"`
	InjuryStatus         *string                   `json:"injuryStatus"`
	Injured              *bool                     `json:"injured"`
	TotalPoints          *float64                  `json:"total_points"`
	ProjectedTotalPoints *float64                  `json:"projected_total_points"`
	AvgPoints            *float64                  `json:"avg_points"`
	ProjectedAvgPoints   *float64                  `json:"projected_avg_points"`
	PercentOwned         *float64                  `json:"percent_owned"`
	PercentStarted       *float64                  `json:"percent_started"`
	HeadshotURL          *string                   `json:"headshotUrl"`
	Stats                map[string]WeeklyStatLine `json:"stats"`
	SeasonTotals         *SeasonTotals             `json:"seasonTotals"`
	Schedule             map[string]*ScheduleEntry `json:"schedule"`
}
