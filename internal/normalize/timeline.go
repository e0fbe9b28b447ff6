package normalize

import "github.com/leaguelens/leaguelens/internal/models"

// WeekLine pairs a week identifier with its stat line in timeline order.
type WeekLine struct {
	Week int
	Line models.WeeklyStatLine
}

// BuildTimeline expands a sparse week->stat-line mapping into one entry
// per requested week, in the order weekRange gives them. Weeks absent
// from the source get a zero-valued line so downstream code never has
// to check for missing weeks (bye weeks included).
func BuildTimeline(sparse map[int]models.WeeklyStatLine, weekRange []int) []WeekLine {
	timeline := make([]WeekLine, 0, len(weekRange))
	for _, week := range weekRange {
		line, ok := sparse[week]
		if !ok {
			line = zeroLine()
		}
		timeline = append(timeline, WeekLine{Week: week, Line: line})
	}
	return timeline
}

// WeekRange returns the canonical ascending week sequence [first..last].
func WeekRange(first, last int) []int {
	if last < first {
		return nil
	}
	weeks := make([]int, 0, last-first+1)
	for w := first; w <= last; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

func zeroLine() models.WeeklyStatLine {
	return models.WeeklyStatLine{
		Breakdown:          map[string]float64{},
		ProjectedBreakdown: map[string]float64{},
	}
}
