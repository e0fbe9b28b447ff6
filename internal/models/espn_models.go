package models

// Wire shapes for the ESPN fantasy football read API. Only the fields
// the payload assembly needs are declared; everything else is ignored
// on decode.

type LeagueResponse struct {
	ID              int        `json:"id"`
	ScoringPeriodID int        `json:"scoringPeriodId"`
	SeasonID        int        `json:"seasonId"`
	Status          Status     `json:"status"`
	Teams           []ESPNTeam `json:"teams"`
	Settings        Settings   `json:"settings"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type ESPNTeam struct {
	ID                  int    `json:"id"`
	Abbreviation        string `json:"abbrev"`
	Name                string `json:"name"`
	DivisionID          int    `json:"divisionId"`
	Logo                string `json:"logo"`
	PlayoffSeed         int    `json:"playoffSeed"`
	RankCalculatedFinal int    `json:"rankCalculatedFinal"`
	Roster              Roster `json:"roster"`
	Record              Record `json:"record"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type Record struct {
	Overall RecordDetails `json:"overall"`
}

type RecordDetails struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	Percentage    float64 `json:"percentage"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
	StreakType    string  `json:"streakType"`
	StreakLength  int     `json:"streakLength"`
}

type RosterEntry struct {
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
	LineupSlotID    int             `json:"lineupSlotId"`
	AcquisitionType string          `json:"acquisitionType"`
}

type PlayerPoolEntry struct {
	ID               int        `json:"id"`
	OnTeamID         int        `json:"onTeamId"`
	Player           ESPNPlayer `json:"player"`
	AppliedStatTotal float64    `json:"appliedStatTotal"`
}

type ESPNPlayer struct {
	ID                int       `json:"id"`
	FullName          string    `json:"fullName"`
	DefaultPositionID int       `json:"defaultPositionId"`
	EligibleSlots     []int     `json:"eligibleSlots"`
	ProTeamID         int       `json:"proTeamId"`
	Ownership         Ownership `json:"ownership"`
	Stats             []Stat    `json:"stats"`
	InjuryStatus      string    `json:"injuryStatus"`
	Injured           bool      `json:"injured"`
}

type Ownership struct {
	PercentOwned   float64 `json:"percentOwned"`
	PercentStarted float64 `json:"percentStarted"`
}

type Stat struct {
	StatSourceID    int                `json:"statSourceId"`
	StatSplitTypeID int                `json:"statSplitTypeId"`
	ScoringPeriodID int                `json:"scoringPeriodId"`
	AppliedTotal    float64            `json:"appliedTotal"`
	AppliedStats    map[string]float64 `json:"appliedStats"`
}
