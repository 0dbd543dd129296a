package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

const (
	separatorWidth = 100
	rowTimeLayout  = "2006-01-02 15:04:05"
)

// Console renders the explorer output as text
type Console struct {
	out    io.Writer
	styles Styles
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Separator() {
	c.Println(strings.Repeat("-", separatorWidth))
}

func (c *Console) Warning(message string) {
	c.Println(c.styles.Warning.Render(message))
}

func (c *Console) line(label string, value string) {
	c.Printf("%s %s\n", c.styles.Label.Render(label), c.styles.Value.Render(value))
}

func (c *Console) title(title string) {
	c.Println(c.styles.Title.Render(title))
}

func (c *Console) elapsed(elapsed time.Duration) {
	c.Println(c.styles.Muted.Render(fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))))
	c.Separator()
}

// RenderSelection echoes the filters chosen by the user
func (c *Console) RenderSelection(spec filter.Spec) {
	c.Println("It seems like you wish to filter Bikeshare data based on the following criteria:")
	c.line("City:", spec.City.Title())
	c.line("Month:", titleCase(spec.Month.String()))
	c.line("Day of week:", titleCase(spec.Day.String()))
}

// RenderNoData tells the user that the filters left nothing to analyze
func (c *Console) RenderNoData(spec filter.Spec) {
	c.Warning(fmt.Sprintf("No data for %s (month: %s, day: %s).", spec.City.Title(), titleCase(spec.Month.String()), titleCase(spec.Day.String())))
	c.Separator()
}

func (c *Console) RenderReport(report *stats.Report) {
	c.line("Trips analyzed:", strconv.Itoa(report.Records))
	c.Separator()
	c.RenderTimeStats(report.Time, report.Elapsed.Time)
	c.RenderStationStats(report.Stations, report.Elapsed.Stations)
	c.RenderDurationStats(report.Duration, report.Elapsed.Duration)
	c.RenderUserStats(report.Users, report.Elapsed.Users)
}

func (c *Console) RenderTimeStats(timeStats *stats.TimeStats, elapsed time.Duration) {
	c.title("Calculating The Most Frequent Times of Travel...")
	c.line("Most common month is:", fmt.Sprintf("%s (%d trips)", filter.MonthName(timeStats.Month.Value), timeStats.Month.Count))
	c.line("Most common day of week is:", fmt.Sprintf("%s (%d trips)", filter.DayName(timeStats.DayOfWeek.Value), timeStats.DayOfWeek.Count))
	c.line("Most common hour is:", fmt.Sprintf("%d (%d trips)", timeStats.Hour.Value, timeStats.Hour.Count))
	c.elapsed(elapsed)
}

func (c *Console) RenderStationStats(stationStats *stats.StationStats, elapsed time.Duration) {
	c.title("Calculating The Most Popular Stations and Trip...")
	c.line("Most commonly used start station is:", fmt.Sprintf("%s (%d trips)", stationStats.StartStation.Value, stationStats.StartStation.Count))
	c.line("Most commonly used end station is:", fmt.Sprintf("%s (%d trips)", stationStats.EndStation.Value, stationStats.EndStation.Count))
	c.line("Most frequent combination of start station and end station trip:",
		fmt.Sprintf("From: %s To: %s (%d trips)", stationStats.Trip.Value.Start, stationStats.Trip.Value.End, stationStats.Trip.Count))
	if stationStats.TripDistanceKm != nil {
		c.line("Distance between both stations:", fmt.Sprintf("%.2f km", *stationStats.TripDistanceKm))
	}
	c.elapsed(elapsed)
}

func (c *Console) RenderDurationStats(durationStats *stats.DurationStats, elapsed time.Duration) {
	c.title("Calculating Trip Duration...")
	c.line("Total travel time in seconds:", fmt.Sprintf("%s seconds", formatSeconds(durationStats.TotalSeconds)))
	c.line("Total travel time in hours, minutes & seconds:", formatClock(durationStats.Total))
	c.line("Mean travel time in seconds:", fmt.Sprintf("%s seconds", formatSeconds(durationStats.MeanSeconds)))
	c.line("Mean travel time in hours, minutes & seconds:", formatClock(durationStats.Mean))
	c.elapsed(elapsed)
}

func (c *Console) RenderUserStats(userStats *stats.UserStats, elapsed time.Duration) {
	c.title("Calculating User Stats...")
	c.Println(c.styles.Label.Render("Counts of User Types:"))
	c.counts(userStats.UserTypes)

	if userStats.Genders != nil {
		c.Println(c.styles.Label.Render("Counts of Gender:"))
		c.counts(userStats.Genders)
	}

	if userStats.BirthYears != nil {
		c.line("Earliest year of birth is:", strconv.Itoa(userStats.BirthYears.Earliest))
		c.line("Most recent year of birth is:", strconv.Itoa(userStats.BirthYears.MostRecent))
		c.line("Most common year of birth is:", strconv.Itoa(userStats.BirthYears.MostCommon.Value))
		c.line("Trips with year of birth:", strconv.Itoa(userStats.BirthYears.Known))
	}
	c.elapsed(elapsed)
}

func (c *Console) counts(counts []counter.Count[string]) {
	width := 0
	for _, count := range counts {
		width = max(width, len(count.Value))
	}
	for _, count := range counts {
		c.Printf("  %-*s %s\n", width, count.Value, c.styles.Value.Render(strconv.Itoa(count.Count)))
	}
}

// RenderRows prints raw trips as a table. offset is the position of the first row
func (c *Console) RenderRows(rows []trip.TripData, offset int, schema dataset.Schema) {
	headers := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if schema.HasGender {
		headers = append(headers, "Gender")
	}
	if schema.HasBirthYear {
		headers = append(headers, "Birth Year")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for idx, row := range rows {
		values := []string{
			strconv.Itoa(offset + idx),
			row.StartTime.Format(rowTimeLayout),
			formatTime(row.EndTime),
			formatSeconds(row.Duration),
			row.StartStation,
			row.EndStation,
			row.UserType,
		}
		if schema.HasGender {
			values = append(values, row.Gender)
		}
		if schema.HasBirthYear {
			birthYear := ""
			if row.HasBirthYear {
				birthYear = strconv.Itoa(row.BirthYear)
			}
			values = append(values, birthYear)
		}
		t.Row(values...)
	}

	c.Println(t.Render())
	c.Separator()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(rowTimeLayout)
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

func formatClock(clock stats.Clock) string {
	return fmt.Sprintf("%d hours %d minutes %s seconds", clock.Hours, clock.Minutes, formatSeconds(clock.Seconds))
}

func titleCase(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
