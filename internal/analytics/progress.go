package analytics

import (
	"time"

	"github.com/eidergdc/treinano-sub001/internal/domain"
)

// MaxSeriesPoints is the number of most recent history entries plotted.
const MaxSeriesPoints = 10

// SeriesPoint is one plotted history entry. X and Y are normalized to [0,1]:
// X runs from the oldest (0) to the newest (1) point, Y is 0 at the window's
// max weight and 1 at its min.
type SeriesPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
	X      float64   `json:"x"`
	Y      float64   `json:"y"`
}

// ProgressSeries is the trend of one exercise over its latest entries.
type ProgressSeries struct {
	Points    []SeriesPoint `json:"points"`
	Current   float64       `json:"current"`
	Max       float64       `json:"max"`
	Min       float64       `json:"min"`
	NetChange float64       `json:"netChange"`
}

// BuildSeries builds the progress series from history given in chronological
// order. It returns false when history is empty, which callers render as an
// empty state rather than as a chart.
func BuildSeries(history []domain.ExerciseHistoryEntry) (ProgressSeries, bool) {
	if len(history) == 0 {
		return ProgressSeries{}, false
	}

	window := history
	if len(window) > MaxSeriesPoints {
		window = window[len(window)-MaxSeriesPoints:]
	}

	maxWeight, minWeight := window[0].Weight, window[0].Weight
	for _, e := range window[1:] {
		maxWeight = max(maxWeight, e.Weight)
		minWeight = min(minWeight, e.Weight)
	}

	// flat series: divide by 1 and centre every point vertically
	weightRange := maxWeight - minWeight
	flat := weightRange == 0
	if flat {
		weightRange = 1
	}

	points := make([]SeriesPoint, len(window))
	for i, e := range window {
		x := 0.0
		if len(window) > 1 {
			x = float64(i) / float64(len(window)-1)
		}
		y := 0.5
		if !flat {
			y = 1 - (e.Weight-minWeight)/weightRange
		}
		points[i] = SeriesPoint{
			Date:   e.Date,
			Weight: e.Weight,
			Reps:   e.Reps,
			X:      x,
			Y:      y,
		}
	}

	current := window[len(window)-1].Weight
	return ProgressSeries{
		Points:    points,
		Current:   current,
		Max:       maxWeight,
		Min:       minWeight,
		NetChange: current - window[0].Weight,
	}, true
}
