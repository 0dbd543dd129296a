package trip

import (
	"testing"
	"time"
)

func TestDeriveCalendarFields(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		month     int
		dayOfWeek int
		hour      int
	}{
		{"monday morning", time.Date(2017, time.January, 2, 8, 15, 0, 0, time.UTC), 1, 0, 8},
		{"sunday midnight", time.Date(2017, time.January, 1, 0, 7, 57, 0, time.UTC), 1, 6, 0},
		{"saturday late", time.Date(2017, time.June, 24, 23, 59, 59, 0, time.UTC), 6, 5, 23},
		{"wednesday", time.Date(2017, time.March, 15, 12, 0, 0, 0, time.UTC), 3, 2, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := TripData{StartTime: tt.start}
			td.DeriveCalendarFields()
			if td.Month != tt.month || td.DayOfWeek != tt.dayOfWeek || td.Hour != tt.hour {
				t.Errorf("got (%d, %d, %d), want (%d, %d, %d)", td.Month, td.DayOfWeek, td.Hour, tt.month, tt.dayOfWeek, tt.hour)
			}
		})
	}
}

func TestDeriveCalendarFieldsAfterMutation(t *testing.T) {
	td := TripData{StartTime: time.Date(2017, time.February, 6, 10, 0, 0, 0, time.UTC)}
	td.DeriveCalendarFields()

	td.StartTime = time.Date(2017, time.May, 7, 17, 30, 0, 0, time.UTC)
	td.DeriveCalendarFields()

	if td.Month != 5 || td.DayOfWeek != 6 || td.Hour != 17 {
		t.Errorf("derived fields not recomputed: (%d, %d, %d)", td.Month, td.DayOfWeek, td.Hour)
	}
}

func TestRoute(t *testing.T) {
	td := TripData{StartStation: "Canal St", EndStation: "Clark St"}
	if got := td.Route(); got != (Route{Start: "Canal St", End: "Clark St"}) {
		t.Errorf("unexpected route %+v", got)
	}
}
