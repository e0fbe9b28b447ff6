package normalize

import "math"

// Metrics bundles the derived performance numbers for one player's
// timeline. Everything here is recomputable from the timeline and the
// season scalars; nothing is stored back on the snapshot.
type Metrics struct {
	ConsistencyScore    float64 `json:"consistency_score"`
	Floor               float64 `json:"floor"`
	Ceiling             float64 `json:"ceiling"`
	BeatProjectionCount int     `json:"beat_projection_count"`
	VsProjectionPct     float64 `json:"vs_projection_pct"`
}

// ComputeMetrics derives the full metric set from a timeline and the
// player's season totals.
func ComputeMetrics(timeline []WeekLine, totalPoints, projectedTotal, avgPoints float64) Metrics {
	weekly := weeklyPoints(timeline)
	floor, ceiling := FloorAndCeiling(weekly)
	return Metrics{
		ConsistencyScore:    ConsistencyScore(weekly, avgPoints),
		Floor:               floor,
		Ceiling:             ceiling,
		BeatProjectionCount: BeatProjectionCount(timeline),
		VsProjectionPct:     VsProjectionPct(totalPoints, projectedTotal),
	}
}

// VsProjectionPct is the signed percentage a total sits above or below
// its projection. A zero projection yields 0 rather than dividing.
func VsProjectionPct(total, projectedTotal float64) float64 {
	if projectedTotal <= 0 {
		return 0
	}
	return (total/projectedTotal - 1) * 100
}

// ConsistencyScore maps week-to-week variance into [0, 100]: scoring at
// the average every week reads 100, high variance relative to the
// average pulls toward 0. Zero-point weeks are treated as "did not
// play" and excluded from the deviation.
func ConsistencyScore(weeklyPoints []float64, avgPoints float64) float64 {
	if avgPoints <= 0 {
		return 0
	}

	sigma := populationStdDev(nonZero(weeklyPoints))
	score := (1 - sigma/avgPoints) * 100
	return clamp(score, 0, 100)
}

// FloorAndCeiling returns the worst and best played weeks. The ceiling
// includes zero so an all-bye timeline reads (0, 0); the floor is the
// minimum of the non-zero weeks (negative weeks count, a D/ST can
// finish below zero) and 0 only when no non-zero week exists.
func FloorAndCeiling(weeklyPoints []float64) (floor, ceiling float64) {
	played := false
	for _, pts := range weeklyPoints {
		if pts > ceiling {
			ceiling = pts
		}
		if pts == 0 {
			continue
		}
		if !played || pts < floor {
			floor = pts
		}
		played = true
	}
	return floor, ceiling
}

// BeatProjectionCount counts weeks where the player played and met or
// beat the projection.
func BeatProjectionCount(timeline []WeekLine) int {
	count := 0
	for _, entry := range timeline {
		if entry.Line.Points > 0 && entry.Line.Points >= entry.Line.ProjectedPoints {
			count++
		}
	}
	return count
}

func weeklyPoints(timeline []WeekLine) []float64 {
	points := make([]float64, 0, len(timeline))
	for _, entry := range timeline {
		points = append(points, entry.Line.Points)
	}
	return points
}

func nonZero(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if v != 0 {
			kept = append(kept, v)
		}
	}
	return kept
}

func populationStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return math.Sqrt(variance)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
