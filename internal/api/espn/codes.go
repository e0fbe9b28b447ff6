package espn

// Lookup tables for ESPN's numeric codes. Unknown codes fall through to
// "Unknown" (or the raw id for stat keys) instead of failing.

var positions = map[int]string{
	1: "QB", 2: "RB", 3: "WR", 4: "TE", 5: "K", 16: "D/ST",
}

func positionName(positionID int) string {
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}

var proTeams = map[int]string{
	1: "ATL", 2: "BUF", 3: "CHI", 4: "CIN", 5: "CLE", 6: "DAL", 7: "DEN", 8: "DET",
	9: "GB", 10: "TEN", 11: "IND", 12: "KC", 13: "LV", 14: "LAR", 15: "MIA", 16: "MIN",
	17: "NE", 18: "NO", 19: "NYG", 20: "NYJ", 21: "PHI", 22: "ARI", 23: "PIT", 24: "LAC",
	25: "SF", 26: "SEA", 27: "TB", 28: "WSH", 29: "CAR", 30: "JAX", 33: "BAL", 34: "HOU",
}

func proTeamName(proTeamID int) string {
	if team, ok := proTeams[proTeamID]; ok {
		return team
	}
	return "Unknown"
}

var lineupSlots = map[int]string{
	0:  "QB",
	2:  "RB",
	3:  "RB/WR",
	4:  "WR",
	5:  "WR/TE",
	6:  "TE",
	7:  "OP",
	16: "D/ST",
	17: "K",
	20: "BE",
	21: "IR",
	23: "RB/WR/TE",
}

func lineupSlotName(slotID int) string {
	if slot, ok := lineupSlots[slotID]; ok {
		return slot
	}
	return "Unknown"
}

// statIDNames converts ESPN's numeric applied-stat ids into the
// readable keys the classifier table uses.
var statIDNames = map[string]string{
	"0":   "passingAttempts",
	"1":   "passingCompletions",
	"2":   "passingIncompletions",
	"3":   "passingYards",
	"4":   "passingTouchdowns",
	"19":  "passing2PtConversions",
	"20":  "passingInterceptions",
	"23":  "rushingAttempts",
	"24":  "rushingYards",
	"25":  "rushingTouchdowns",
	"26":  "rushing2PtConversions",
	"42":  "receivingYards",
	"43":  "receivingTouchdowns",
	"44":  "receiving2PtConversions",
	"53":  "receivingReceptions",
	"58":  "receivingTargets",
	"68":  "fumbles",
	"72":  "lostFumbles",
	"74":  "madeFieldGoalsFrom50Plus",
	"77":  "madeFieldGoalsFrom40To49",
	"80":  "madeFieldGoalsFromUnder40",
	"83":  "madeFieldGoals",
	"84":  "attemptedFieldGoals",
	"85":  "missedFieldGoals",
	"86":  "madeExtraPoints",
	"87":  "attemptedExtraPoints",
	"88":  "missedExtraPoints",
	"89":  "defensive0PointsAllowed",
	"90":  "defensive1To6PointsAllowed",
	"91":  "defensive7To13PointsAllowed",
	"92":  "defensive14To17PointsAllowed",
	"93":  "defensiveBlockedKickForTouchdowns",
	"95":  "defensiveInterceptions",
	"96":  "defensiveFumbles",
	"97":  "defensiveBlockedKicks",
	"98":  "defensiveSafeties",
	"99":  "defensiveSacks",
	"101": "kickoffReturnTouchdowns",
	"102": "puntReturnTouchdowns",
	"103": "fumbleReturnTouchdowns",
	"104": "interceptionReturnTouchdowns",
	"120": "defensivePointsAllowed",
	"123": "defensive28To34PointsAllowed",
	"124": "defensive35To45PointsAllowed",
	"127": "defensiveYardsAllowed",
	"129": "defensive100To199YardsAllowed",
	"130": "defensive200To299YardsAllowed",
	"132": "defensive350To399YardsAllowed",
	"133": "defensive400To449YardsAllowed",
	"134": "defensive450To499YardsAllowed",
	"135": "defensive500PlusYardsAllowed",
}

// namedStats rewrites numeric stat ids to readable keys. Ids without a
// known name keep their raw id so no data is lost in raw storage.
func namedStats(applied map[string]float64) map[string]float64 {
	named := make(map[string]float64, len(applied))
	for id, value := range applied {
		if name, ok := statIDNames[id]; ok {
			named[name] = value
		} else {
			named[id] = value
		}
	}
	return named
}
