package stats

import (
	"time"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

type tripOption func(*trip.TripData)

func withUser(userType string, gender string, birthYear int) tripOption {
	return func(td *trip.TripData) {
		td.UserType = userType
		td.Gender = gender
		if birthYear != 0 {
			td.BirthYear = birthYear
			td.HasBirthYear = true
		}
	}
}

func withDuration(seconds float64) tripOption {
	return func(td *trip.TripData) {
		td.Duration = seconds
	}
}

func newTrip(start time.Time, from string, to string, options ...tripOption) trip.TripData {
	td := trip.TripData{
		StartTime:    start,
		EndTime:      start.Add(10 * time.Minute),
		StartStation: from,
		EndStation:   to,
		Duration:     600,
		UserType:     "Subscriber",
	}
	for _, option := range options {
		option(&td)
	}
	td.DeriveCalendarFields()
	return td
}

func chicagoSchema() dataset.Schema {
	return dataset.Schema{HasGender: true, HasBirthYear: true}
}

// syntheticChicago builds a deterministic dataset spread over the first half of 2017
func syntheticChicago(size int) *dataset.Dataset {
	stations := []string{"Canal St & Adams St", "Clinton St & Madison St", "Streeter Dr & Grand Ave", "Lake Shore Dr & Monroe St"}
	userTypes := []string{"Subscriber", "Customer", "Subscriber", ""}
	genders := []string{"Male", "Female", "", "Male"}
	base := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)

	var records []trip.TripData
	seed := uint32(7)
	for i := 0; i < size; i++ {
		seed = seed*1103515245 + 12345
		offset := time.Duration(seed%(181*24)) * time.Hour
		birthYear := 0
		if i%5 != 0 {
			birthYear = 1950 + int(seed%50)
		}
		records = append(records, newTrip(
			base.Add(offset),
			stations[int(seed>>3)%len(stations)],
			stations[int(seed>>7)%len(stations)],
			withDuration(float64(60+seed%3000)),
			withUser(userTypes[i%len(userTypes)], genders[int(seed>>5)%len(genders)], birthYear),
		))
	}
	return dataset.New(filter.Chicago, chicagoSchema(), records)
}
