package stats

import (
	"fmt"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

// TimeStats most frequent times of travel
// + Month: most common month (1-12)
// + DayOfWeek: most common day of week, Monday=0
// + Hour: most common start hour (0-23)
type TimeStats struct {
	Month     counter.Count[int] `json:"month"`
	DayOfWeek counter.Count[int] `json:"day_of_week"`
	Hour      counter.Count[int] `json:"hour"`
}

func ComputeTimeStats(ds *dataset.Dataset) (*TimeStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot compute time stats of %s", dataErrors.ErrEmptyDataset, ds.City)
	}

	months := counter.NewCounter[int]()
	days := counter.NewCounter[int]()
	hours := counter.NewCounter[int]()
	for _, record := range ds.Records() {
		months.UpdateCounter(record.Month)
		days.UpdateCounter(record.DayOfWeek)
		hours.UpdateCounter(record.Hour)
	}

	month, _ := months.Mode()
	day, _ := days.Mode()
	hour, _ := hours.Mode()

	return &TimeStats{
		Month:     month,
		DayOfWeek: day,
		Hour:      hour,
	}, nil
}
