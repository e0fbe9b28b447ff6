package statmap

// Category tags for grouping breakdown keys in position-scoped views.
const (
	CategoryPassing   = "passing"
	CategoryRushing   = "rushing"
	CategoryReceiving = "receiving"
	CategoryKicking   = "kicking"
	CategoryDefense   = "defense"
	CategoryMisc      = "misc"
)

// Numeric format tags consumers use when rendering a value.
const (
	FormatInt     = "int"
	FormatDecimal = "decimal"
	FormatPercent = "percent"
)

// StatCategoryEntry describes one raw statistic key: how to label it,
// which category it belongs to, and which positions it applies to.
// An empty Positions slice means the stat applies to every position.
type StatCategoryEntry struct {
	Key       string
	Label     string
	Abbrev    string
	Category  string
	Format    string
	Positions []string
}

var (
	qbOnly   = []string{"QB"}
	rushers  = []string{"QB", "RB", "WR"}
	catchers = []string{"RB", "WR", "TE"}
	kickers  = []string{"K"}
	defense  = []string{"D/ST"}
)

// entries is process-wide reference data, loaded once and never mutated.
// Source vocabularies grow faster than this table; Classify misses are
// expected and callers drop unknown keys silently.
var entries = map[string]StatCategoryEntry{
	"passingAttempts":             {Label: "Passing Attempts", Abbrev: "ATT", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingCompletions":          {Label: "Completions", Abbrev: "CMP", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingIncompletions":        {Label: "Incompletions", Abbrev: "INC", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingYards":                {Label: "Passing Yards", Abbrev: "PA YDS", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingTouchdowns":           {Label: "Passing Touchdowns", Abbrev: "PA TD", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingInterceptions":        {Label: "Interceptions Thrown", Abbrev: "INT", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passing2PtConversions":       {Label: "Passing 2PT Conversions", Abbrev: "PA 2PT", Category: CategoryPassing, Format: FormatInt, Positions: qbOnly},
	"passingCompletionPercentage": {Label: "Completion Percentage", Abbrev: "CMP%", Category: CategoryPassing, Format: FormatPercent, Positions: qbOnly},

	"rushingAttempts":        {Label: "Rushing Attempts", Abbrev: "CAR", Category: CategoryRushing, Format: FormatInt, Positions: rushers},
	"rushingYards":           {Label: "Rushing Yards", Abbrev: "RU YDS", Category: CategoryRushing, Format: FormatInt, Positions: rushers},
	"rushingTouchdowns":      {Label: "Rushing Touchdowns", Abbrev: "RU TD", Category: CategoryRushing, Format: FormatInt, Positions: rushers},
	"rushing2PtConversions":  {Label: "Rushing 2PT Conversions", Abbrev: "RU 2PT", Category: CategoryRushing, Format: FormatInt, Positions: rushers},
	"rushingYardsPerAttempt": {Label: "Yards Per Carry", Abbrev: "YPC", Category: CategoryRushing, Format: FormatDecimal, Positions: rushers},

	"receivingTargets":           {Label: "Targets", Abbrev: "TAR", Category: CategoryReceiving, Format: FormatInt, Positions: catchers},
	"receivingReceptions":        {Label: "Receptions", Abbrev: "REC", Category: CategoryReceiving, Format: FormatInt, Positions: catchers},
	"receivingYards":             {Label: "Receiving Yards", Abbrev: "RE YDS", Category: CategoryReceiving, Format: FormatInt, Positions: catchers},
	"receivingTouchdowns":        {Label: "Receiving Touchdowns", Abbrev: "RE TD", Category: CategoryReceiving, Format: FormatInt, Positions: catchers},
	"receiving2PtConversions":    {Label: "Receiving 2PT Conversions", Abbrev: "RE 2PT", Category: CategoryReceiving, Format: FormatInt, Positions: catchers},
	"receivingYardsPerReception": {Label: "Yards Per Reception", Abbrev: "YPR", Category: CategoryReceiving, Format: FormatDecimal, Positions: catchers},

	"madeFieldGoalsFromUnder40": {Label: "Field Goals Made (Under 40)", Abbrev: "FG <40", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"madeFieldGoalsFrom40To49":  {Label: "Field Goals Made (40-49)", Abbrev: "FG 40-49", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"madeFieldGoalsFrom50Plus":  {Label: "Field Goals Made (50+)", Abbrev: "FG 50+", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"madeFieldGoals":            {Label: "Field Goals Made", Abbrev: "FGM", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"attemptedFieldGoals":       {Label: "Field Goals Attempted", Abbrev: "FGA", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"missedFieldGoals":          {Label: "Field Goals Missed", Abbrev: "FG MISS", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"madeExtraPoints":           {Label: "Extra Points Made", Abbrev: "XPM", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"attemptedExtraPoints":      {Label: "Extra Points Attempted", Abbrev: "XPA", Category: CategoryKicking, Format: FormatInt, Positions: kickers},
	"missedExtraPoints":         {Label: "Extra Points Missed", Abbrev: "XP MISS", Category: CategoryKicking, Format: FormatInt, Positions: kickers},

	"defensiveSacks":               {Label: "Sacks", Abbrev: "SCK", Category: CategoryDefense, Format: FormatDecimal, Positions: defense},
	"defensiveInterceptions":       {Label: "Interceptions", Abbrev: "INT", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensiveFumbles":             {Label: "Fumbles Recovered", Abbrev: "FR", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensiveBlockedKicks":        {Label: "Blocked Kicks", Abbrev: "BLK", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensiveTouchdowns":          {Label: "Defensive Touchdowns", Abbrev: "D TD", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensiveSafeties":            {Label: "Safeties", Abbrev: "SFTY", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensivePointsAllowed":       {Label: "Points Allowed", Abbrev: "PTS ALW", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"defensiveYardsAllowed":        {Label: "Yards Allowed", Abbrev: "YDS ALW", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"kickoffReturnTouchdowns":      {Label: "Kickoff Return Touchdowns", Abbrev: "KR TD", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"puntReturnTouchdowns":         {Label: "Punt Return Touchdowns", Abbrev: "PR TD", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"fumbleReturnTouchdowns":       {Label: "Fumble Return Touchdowns", Abbrev: "FR TD", Category: CategoryDefense, Format: FormatInt, Positions: defense},
	"interceptionReturnTouchdowns": {Label: "Interception Return Touchdowns", Abbrev: "INT TD", Category: CategoryDefense, Format: FormatInt, Positions: defense},

	"fumbles":     {Label: "Fumbles", Abbrev: "FUM", Category: CategoryMisc, Format: FormatInt},
	"lostFumbles": {Label: "Fumbles Lost", Abbrev: "FUML", Category: CategoryMisc, Format: FormatInt},
	"turnovers":   {Label: "Turnovers", Abbrev: "TO", Category: CategoryMisc, Format: FormatInt},
}

// Classify looks up the category entry for a raw stat key. The second
// return is false for keys outside the table; callers drop those from
// categorized views rather than treating them as errors.
func Classify(key string) (StatCategoryEntry, bool) {
	entry, ok := entries[key]
	if !ok {
		return StatCategoryEntry{}, false
	}
	entry.Key = key
	return entry, true
}

// IsApplicable reports whether a stat entry is relevant for a position.
// Entries without a position restriction apply everywhere.
func IsApplicable(entry StatCategoryEntry, position string) bool {
	if len(entry.Positions) == 0 {
		return true
	}
	for _, p := range entry.Positions {
		if p == position {
			return true
		}
	}
	return false
}

// FilterBreakdown projects a breakdown down to the keys applicable to a
// position. The input map is never modified; unknown keys are dropped.
func FilterBreakdown(breakdown map[string]float64, position string) map[string]float64 {
	filtered := make(map[string]float64)
	for key, value := range breakdown {
		entry, ok := Classify(key)
		if !ok {
			continue
		}
		if IsApplicable(entry, position) {
			filtered[key] = value
		}
	}
	return filtered
}
