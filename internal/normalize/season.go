package normalize

import "github.com/leaguelens/leaguelens/internal/models"

// AggregateSeason produces season totals for a player. Source-provided
// totals win when they carry a breakdown; otherwise the totals are
// folded from the weekly timeline. Only weeks with points > 0 count:
// a zero-point empty week is "did not play" and would drag the average.
func AggregateSeason(provided *models.SeasonTotals, timeline []WeekLine) models.SeasonTotals {
	if provided != nil && len(provided.Breakdown) > 0 {
		return *provided
	}

	totals := models.SeasonTotals{
		Breakdown:          map[string]float64{},
		ProjectedBreakdown: map[string]float64{},
	}

	active := 0
	for _, entry := range timeline {
		if entry.Line.Points <= 0 {
			continue
		}
		active++
		totals.Points += entry.Line.Points
		totals.ProjectedPoints += entry.Line.ProjectedPoints
		for key, value := range entry.Line.Breakdown {
			totals.Breakdown[key] += value
		}
		for key, value := range entry.Line.ProjectedBreakdown {
			totals.ProjectedBreakdown[key] += value
		}
	}

	if active > 0 {
		totals.AvgPoints = totals.Points / float64(active)
		totals.ProjectedAvgPoints = totals.ProjectedPoints / float64(active)
	}

	return totals
}
