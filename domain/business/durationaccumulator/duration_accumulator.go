package durationaccumulator

import (
	"fmt"

	dataErrors "bikeshare/domain/errors"
)

// DurationAccumulator struct that collects trip durations
// + Counter: counts the amount of durations collected
// + TotalDuration: sum of durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("%w: cannot get average duration, counter is zero", dataErrors.ErrEmptyDataset)
	}
	return da.TotalDuration / float64(da.Counter), nil
}
