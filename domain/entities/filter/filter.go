package filter

import (
	"fmt"
	"strings"
	"time"

	dataErrors "bikeshare/domain/errors"
)

const allValues = "all"

// City identifies one of the supported bikeshare systems
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

var cities = [...]City{Chicago, NewYorkCity, Washington}

// Cities returns the supported cities in display order
func Cities() []City {
	return append([]City(nil), cities[:]...)
}

// Title returns the city name capitalized for display, e.g. New York City
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Month is a month number used as filter. AllMonths means no restriction
type Month int

const AllMonths Month = 0

// Only the first half of the year is covered by the datasets
var monthNames = [...]string{"january", "february", "march", "april", "may", "june"}

// MonthNames returns the month names accepted by ParseMonth, "all" excluded
func MonthNames() []string {
	return append([]string(nil), monthNames[:]...)
}

func (m Month) IsAll() bool {
	return m == AllMonths
}

func (m Month) Valid() bool {
	return m >= AllMonths && int(m) <= len(monthNames)
}

func (m Month) String() string {
	if m.IsAll() {
		return allValues
	}
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Weekday is a day of week used as filter, Monday=0 to Sunday=6. AllDays means no restriction
type Weekday int

const AllDays Weekday = -1

var dayNames = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayNames returns the day names accepted by ParseDay, "all" excluded
func DayNames() []string {
	return append([]string(nil), dayNames[:]...)
}

func (d Weekday) IsAll() bool {
	return d == AllDays
}

func (d Weekday) Valid() bool {
	return d >= AllDays && int(d) < len(dayNames)
}

func (d Weekday) String() string {
	if d.IsAll() {
		return allValues
	}
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// DayName returns the English name of a derived day_of_week value (Monday=0)
func DayName(dayOfWeek int) string {
	return time.Weekday((dayOfWeek + 1) % 7).String()
}

// MonthName returns the English name of a derived month value (1-12)
func MonthName(month int) string {
	return time.Month(month).String()
}

// Spec contains the filters selected for one analysis
type Spec struct {
	City  City    `json:"city"`
	Month Month   `json:"month"`
	Day   Weekday `json:"day"`
}

// NewSpec parses the three filter values. Values are case-insensitive and trimmed
func NewSpec(city string, month string, day string) (Spec, error) {
	parsedCity, err := ParseCity(city)
	if err != nil {
		return Spec{}, err
	}

	parsedMonth, err := ParseMonth(month)
	if err != nil {
		return Spec{}, err
	}

	parsedDay, err := ParseDay(day)
	if err != nil {
		return Spec{}, err
	}

	return Spec{City: parsedCity, Month: parsedMonth, Day: parsedDay}, nil
}

func ParseCity(value string) (City, error) {
	normalized := normalize(value)
	for _, c := range cities {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown city %q", dataErrors.ErrInvalidFilterValue, value)
}

func ParseMonth(value string) (Month, error) {
	normalized := normalize(value)
	if normalized == allValues {
		return AllMonths, nil
	}
	for i, name := range monthNames {
		if name == normalized {
			return Month(i + 1), nil
		}
	}
	return AllMonths, fmt.Errorf("%w: unknown month %q", dataErrors.ErrInvalidFilterValue, value)
}

func ParseDay(value string) (Weekday, error) {
	normalized := normalize(value)
	if normalized == allValues {
		return AllDays, nil
	}
	for i, name := range dayNames {
		if name == normalized {
			return Weekday(i), nil
		}
	}
	return AllDays, fmt.Errorf("%w: unknown day %q", dataErrors.ErrInvalidFilterValue, value)
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
