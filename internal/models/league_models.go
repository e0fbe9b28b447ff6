package models

// LeagueSnapshot is the complete normalized result of one connect pass.
// It is built once, stored whole, and replaced (never mutated) by the
// next refresh.
type LeagueSnapshot struct {
	LeagueName string              `json:"leagueName"`
	LeagueID   string              `json:"leagueId"`
	Standings  []Team              `json:"standings"`
	Teams      []Team              `json:"teams"`
	Rosters    map[string][]Player `json:"rosters"`
}

type Team struct {
	TeamID        int     `json:"team_id"`
	Name          string  `json:"team_name"`
	Abbreviation  string  `json:"team_abbrev"`
	DivisionName  string  `json:"division_name"`
	LogoURL       string  `json:"logo_url"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Standing      int     `json:"standing"`
	FinalStanding int     `json:"final_standing"`
	PlayoffPct    float64 `json:"playoff_pct"`
	StreakType    string  `json:"streak_type"`
	StreakLength  int     `json:"streak_length"`
}

type Player struct {
	Name                 string                    `json:"name"`
	PlayerID             int                       `json:"playerId"`
	Position             string                    `json:"position"`
	PosRank              int                       `json:"posRank"`
	EligibleSlots        []string                  `json:"eligibleSlots"`
	LineupSlot           string                    `json:"lineupSlot"`
	AcquisitionType      string                    `json:"acquisitionType"`
	ProTeam              string                    `json:"proTeam"`
	InjuryStatus         string                    `json:"injuryStatus"`
	Injured              bool                      `json:"injured"`
	TotalPoints          float64                   `json:"total_points"`
	ProjectedTotalPoints float64                   `json:"projected_total_points"`
	AvgPoints            float64                   `json:"avg_points"`
	ProjectedAvgPoints   float64                   `json:"projected_avg_points"`
	PercentOwned         float64                   `json:"percent_owned"`
	PercentStarted       float64                   `json:"percent_started"`
	HeadshotURL          string                    `json:"headshotUrl"`
	Stats                map[string]WeeklyStatLine `json:"stats"`
	SeasonTotals         *SeasonTotals             `json:"seasonTotals"`
	Schedule             map[string]*ScheduleEntry `json:"schedule"`
}

// WeeklyStatLine is one week of scoring for a player. A week with zero
// points and an empty breakdown means "did not play" and is excluded
// from every derived metric.
type WeeklyStatLine struct {
	Points             float64            `json:"points"`
	ProjectedPoints    float64            `json:"projected_points"`
	Breakdown          map[string]float64 `json:"breakdown"`
	ProjectedBreakdown map[string]float64 `json:"projected_breakdown"`
}

type SeasonTotals struct {
	Points             float64            `json:"points"`
	ProjectedPoints    float64            `json:"projected_points"`
	AvgPoints          float64            `json:"avg_points"`
	ProjectedAvgPoints float64            `json:"projected_avg_points"`
	Breakdown          map[string]float64 `json:"breakdown"`
	ProjectedBreakdown map[string]float64 `json:"projected_breakdown"`
}

// ScheduleEntry describes a player's opponent for one week. A nil entry
// in the schedule map is a bye week.
type ScheduleEntry struct {
	Team string `json:"team"`
	Date string `json:"date,omitempty"`
}
