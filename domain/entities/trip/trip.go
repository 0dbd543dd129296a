package trip

import "time"

// TripData struct that contains one bikeshare trip
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: kind of user (Subscriber, Customer, ...). Empty when missing
// + Gender: gender of the user. Empty when missing or when the city does not provide it
// + BirthYear: year of birth of the user. Only meaningful if HasBirthYear is true
// + Month, DayOfWeek, Hour: calendar fields derived from StartTime. DayOfWeek is 0 for Monday
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	HasBirthYear bool      `json:"-"`
	Month        int       `json:"month"`
	DayOfWeek    int       `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// DeriveCalendarFields sets Month, DayOfWeek and Hour from StartTime. It must be called
// again whenever StartTime changes.
func (td *TripData) DeriveCalendarFields() {
	td.Month = int(td.StartTime.Month())
	td.DayOfWeek = DayOfWeek(td.StartTime)
	td.Hour = td.StartTime.Hour()
}

// DayOfWeek returns the weekday of t counting from Monday=0 to Sunday=6
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Route returns the pair start station, end station of the trip
func (td TripData) Route() Route {
	return Route{Start: td.StartStation, End: td.EndStation}
}

// Route is a (start station, end station) pair used as a single key
type Route struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
