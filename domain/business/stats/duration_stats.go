package stats

import (
	"fmt"
	"math"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

// Clock a number of seconds split in hours, minutes and seconds. Hours and minutes
// are truncated while Seconds keeps the fractional part.
type Clock struct {
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// SplitSeconds hh = s // 3600, mm = (s % 3600) // 60, ss = s % 60
func SplitSeconds(seconds float64) Clock {
	minutes := math.Floor(seconds / 60)
	remainder := seconds - minutes*60
	hours := math.Floor(minutes / 60)
	minutes = minutes - hours*60

	return Clock{
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: remainder,
	}
}

// DurationStats total and mean trip duration, in seconds and split as Clock
type DurationStats struct {
	TotalSeconds float64 `json:"total_seconds"`
	Total        Clock   `json:"total"`
	MeanSeconds  float64 `json:"mean_seconds"`
	Mean         Clock   `json:"mean"`
}

func ComputeDurationStats(ds *dataset.Dataset) (*DurationStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot compute duration stats of %s", dataErrors.ErrEmptyDataset, ds.City)
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range ds.Records() {
		accumulator.UpdateAccumulator(record.Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, err
	}

	return &DurationStats{
		TotalSeconds: accumulator.TotalDuration,
		Total:        SplitSeconds(accumulator.TotalDuration),
		MeanSeconds:  mean,
		Mean:         SplitSeconds(mean),
	}, nil
}
