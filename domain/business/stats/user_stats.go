package stats

import (
	"fmt"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	dataErrors "bikeshare/domain/errors"
)

// MissingCategory label under which records without a value are counted
const MissingCategory = "Unknown"

// BirthYearStats earliest, most recent and most common year of birth.
// Known is the amount of trips that carry a year of birth
type BirthYearStats struct {
	Known      int                `json:"known"`
	Earliest   int                `json:"earliest"`
	MostRecent int                `json:"most_recent"`
	MostCommon counter.Count[int] `json:"most_common"`
}

// UserStats counts of bikeshare users.
// Genders is nil when the city does not provide gender. BirthYears is nil when the city
// does not provide birth year or when no trip of the dataset has one.
type UserStats struct {
	UserTypes  []counter.Count[string] `json:"user_types"`
	Genders    []counter.Count[string] `json:"genders,omitempty"`
	BirthYears *BirthYearStats         `json:"birth_years,omitempty"`
}

func ComputeUserStats(ds *dataset.Dataset) (*UserStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot compute user stats of %s", dataErrors.ErrEmptyDataset, ds.City)
	}

	userTypes := counter.NewCounter[string]()
	genders := counter.NewCounter[string]()
	birthYears := counter.NewCounter[int]()
	var birthYearStats *BirthYearStats

	for _, record := range ds.Records() {
		userTypes.UpdateCounter(categoryOrMissing(record.UserType))

		if ds.Schema.HasGender {
			genders.UpdateCounter(categoryOrMissing(record.Gender))
		}

		if !ds.Schema.HasBirthYear || !record.HasBirthYear {
			continue
		}

		birthYears.UpdateCounter(record.BirthYear)
		if birthYearStats == nil {
			birthYearStats = &BirthYearStats{Earliest: record.BirthYear, MostRecent: record.BirthYear}
			continue
		}
		birthYearStats.Earliest = min(birthYearStats.Earliest, record.BirthYear)
		birthYearStats.MostRecent = max(birthYearStats.MostRecent, record.BirthYear)
	}

	userStats := &UserStats{
		UserTypes: userTypes.Counts(),
	}

	if ds.Schema.HasGender {
		userStats.Genders = genders.Counts()
	}

	if birthYearStats != nil {
		birthYearStats.MostCommon, _ = birthYears.Mode()
		birthYearStats.Known = birthYears.GetTotal()
		userStats.BirthYears = birthYearStats
	}

	return userStats, nil
}

func categoryOrMissing(value string) string {
	if value == "" {
		return MissingCategory
	}
	return value
}
