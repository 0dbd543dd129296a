package presentation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

func sampleReport(withDemographics bool) *stats.Report {
	distance := 1.234
	report := &stats.Report{
		Filter:  filter.Spec{City: filter.Chicago, Month: filter.AllMonths, Day: filter.AllDays},
		Records: 3,
		Time: &stats.TimeStats{
			Month:     counter.Count[int]{Value: 3, Count: 2},
			DayOfWeek: counter.Count[int]{Value: 0, Count: 2},
			Hour:      counter.Count[int]{Value: 17, Count: 3},
		},
		Stations: &stats.StationStats{
			StartStation:   counter.Count[string]{Value: "Canal St & Adams St", Count: 2},
			EndStation:     counter.Count[string]{Value: "Clark St & Lake St", Count: 2},
			Trip:           counter.Count[trip.Route]{Value: trip.Route{Start: "Canal St & Adams St", End: "Clark St & Lake St"}, Count: 2},
			TripDistanceKm: &distance,
		},
		Duration: &stats.DurationStats{
			TotalSeconds: 60,
			Total:        stats.SplitSeconds(60),
			MeanSeconds:  20,
			Mean:         stats.SplitSeconds(20),
		},
		Users: &stats.UserStats{
			UserTypes: []counter.Count[string]{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}},
		},
		Elapsed: stats.Elapsed{Time: 1500 * time.Microsecond},
	}

	if withDemographics {
		report.Users.Genders = []counter.Count[string]{{Value: "Male", Count: 2}, {Value: "Female", Count: 1}}
		report.Users.BirthYears = &stats.BirthYearStats{Known: 3, Earliest: 1950, MostRecent: 1999, MostCommon: counter.Count[int]{Value: 1989, Count: 2}}
	}
	return report
}

func TestRenderReport(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out).RenderReport(sampleReport(true))
	output := out.String()

	expected := []string{
		"Most common month is:", "March (2 trips)",
		"Most common day of week is:", "Monday (2 trips)",
		"Most common hour is:", "17 (3 trips)",
		"From: Canal St & Adams St To: Clark St & Lake St (2 trips)",
		"1.23 km",
		"60 seconds", "0 hours 1 minutes 0 seconds",
		"20 seconds", "0 hours 0 minutes 20 seconds",
		"Counts of User Types:", "Subscriber",
		"Counts of Gender:", "Female",
		"Earliest year of birth is:", "1950",
		"Most recent year of birth is:", "1999",
		"Most common year of birth is:", "1989",
		"Trips with year of birth:", "3",
		"This took 0.0015 seconds.",
	}
	for _, e := range expected {
		if !strings.Contains(output, e) {
			t.Errorf("output does not contain %q", e)
		}
	}
}

func TestRenderReportWithoutDemographics(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out).RenderReport(sampleReport(false))
	output := out.String()

	for _, unexpected := range []string{"Counts of Gender:", "year of birth"} {
		if strings.Contains(output, unexpected) {
			t.Errorf("output should not contain %q", unexpected)
		}
	}
}

func TestRenderSelectionAndNoData(t *testing.T) {
	var out bytes.Buffer
	console := NewConsole(&out)
	spec := filter.Spec{City: filter.NewYorkCity, Month: 4, Day: 6}

	console.RenderSelection(spec)
	console.RenderNoData(spec)
	output := out.String()

	for _, e := range []string{"New York City", "April", "Sunday", "No data for New York City"} {
		if !strings.Contains(output, e) {
			t.Errorf("output does not contain %q", e)
		}
	}
}

func TestRenderRows(t *testing.T) {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	rows := []trip.TripData{
		{StartTime: start, EndTime: start.Add(time.Minute), StartStation: "A St", EndStation: "B St", Duration: 60, UserType: "Subscriber", Gender: "Male", BirthYear: 1980, HasBirthYear: true},
		{StartTime: start, StartStation: "C St", EndStation: "D St", Duration: 12.5, UserType: "Customer"},
	}

	var out bytes.Buffer
	NewConsole(&out).RenderRows(rows, 5, dataset.Schema{HasGender: true, HasBirthYear: true})
	output := out.String()

	for _, e := range []string{"Start Station", "Birth Year", "A St", "D St", "1980", "12.5", "2017-01-02 08:01:00", "5", "6"} {
		if !strings.Contains(output, e) {
			t.Errorf("output does not contain %q", e)
		}
	}

	out.Reset()
	NewConsole(&out).RenderRows(rows, 0, dataset.Schema{})
	if strings.Contains(out.String(), "Gender") {
		t.Error("gender column should not be rendered for cities without it")
	}
}
