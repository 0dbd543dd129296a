package dataset

import (
	"fmt"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// Schema tells which optional columns the source of a city provides
type Schema struct {
	HasGender    bool `json:"has_gender" yaml:"has_gender"`
	HasBirthYear bool `json:"has_birth_year" yaml:"has_birth_year"`
}

// Dataset ordered trips of exactly one city. A Dataset is never mutated after creation:
// filtering returns a new one.
type Dataset struct {
	City    filter.City
	Schema  Schema
	records []trip.TripData
}

func New(city filter.City, schema Schema, records []trip.TripData) *Dataset {
	return &Dataset{
		City:    city,
		Schema:  schema,
		records: records,
	}
}

func (d *Dataset) Len() int {
	return len(d.records)
}

func (d *Dataset) IsEmpty() bool {
	return len(d.records) == 0
}

// Records returns the trips in their original order. Callers must not modify the slice
func (d *Dataset) Records() []trip.TripData {
	return d.records
}

// Filter returns the trips whose derived month equals month (unless AllMonths) and whose
// derived day of week equals day (unless AllDays), keeping the original order.
func (d *Dataset) Filter(month filter.Month, day filter.Weekday) (*Dataset, error) {
	if !month.Valid() {
		return nil, fmt.Errorf("%w: month %d", dataErrors.ErrInvalidFilterValue, int(month))
	}
	if !day.Valid() {
		return nil, fmt.Errorf("%w: day %d", dataErrors.ErrInvalidFilterValue, int(day))
	}

	if month.IsAll() && day.IsAll() {
		return New(d.City, d.Schema, d.records), nil
	}

	var filtered []trip.TripData
	for _, record := range d.records {
		if !month.IsAll() && record.Month != int(month) {
			continue
		}
		if !day.IsAll() && record.DayOfWeek != int(day) {
			continue
		}
		filtered = append(filtered, record)
	}

	return New(d.City, d.Schema, filtered), nil
}

// Page returns up to size records starting at offset. An offset past the end returns nil
func (d *Dataset) Page(offset int, size int) []trip.TripData {
	if offset < 0 || size <= 0 || offset >= len(d.records) {
		return nil
	}
	end := offset + size
	if end > len(d.records) {
		end = len(d.records)
	}
	return d.records[offset:end]
}
