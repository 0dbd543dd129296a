package stats

import (
	"errors"
	"testing"
	"time"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

func TestComputeTimeStats(t *testing.T) {
	ds := dataset.New(filter.Chicago, chicagoSchema(), []trip.TripData{
		newTrip(time.Date(2017, time.March, 6, 8, 0, 0, 0, time.UTC), "A", "B"),   // monday
		newTrip(time.Date(2017, time.March, 7, 8, 30, 0, 0, time.UTC), "A", "B"),  // tuesday
		newTrip(time.Date(2017, time.March, 13, 17, 0, 0, 0, time.UTC), "A", "B"), // monday
		newTrip(time.Date(2017, time.May, 1, 8, 0, 0, 0, time.UTC), "A", "B"),     // monday
	})

	timeStats, err := ComputeTimeStats(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if timeStats.Month.Value != 3 || timeStats.Month.Count != 3 {
		t.Errorf("unexpected month %+v", timeStats.Month)
	}
	if timeStats.DayOfWeek.Value != 0 || timeStats.DayOfWeek.Count != 3 {
		t.Errorf("unexpected day of week %+v", timeStats.DayOfWeek)
	}
	if timeStats.Hour.Value != 8 || timeStats.Hour.Count != 3 {
		t.Errorf("unexpected hour %+v", timeStats.Hour)
	}
}

func TestComputeTimeStatsMatchesBruteForce(t *testing.T) {
	ds := syntheticChicago(2000)

	timeStats, err := ComputeTimeStats(ds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	months := map[int]int{}
	days := map[int]int{}
	hours := map[int]int{}
	for _, r := range ds.Records() {
		months[r.Month]++
		days[r.DayOfWeek]++
		hours[r.Hour]++
	}

	checkMax := func(name string, counts map[int]int, value int, count int) {
		if counts[value] != count {
			t.Errorf("%s: reported count %d but %d records have value %d", name, count, counts[value], value)
		}
		for v, c := range counts {
			if c > count {
				t.Errorf("%s: value %d has %d records, more than the mode %d (%d)", name, v, c, value, count)
			}
		}
	}

	checkMax("month", months, timeStats.Month.Value, timeStats.Month.Count)
	checkMax("day of week", days, timeStats.DayOfWeek.Value, timeStats.DayOfWeek.Count)
	checkMax("hour", hours, timeStats.Hour.Value, timeStats.Hour.Count)
}

func TestComputeTimeStatsEmpty(t *testing.T) {
	ds := dataset.New(filter.Chicago, chicagoSchema(), nil)
	if _, err := ComputeTimeStats(ds); !errors.Is(err, dataErrors.ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}
