package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/stats"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/presentation"
)

const (
	componentName   = "session"
	allOption       = "all"
	defaultPageSize = 5
)

// DatasetLoader loads the trips and the station catalog of a city. loader.Loader implements it
type DatasetLoader interface {
	Load(city filter.City) (*dataset.Dataset, error)
	LoadStations(city filter.City) (station.Catalog, error)
}

// ReportPublisher sends a report somewhere else. communication.ReportPublisher implements it
type ReportPublisher interface {
	Publish(ctx context.Context, report *stats.Report) error
}

// Session interactive exploration of the bikeshare data
type Session struct {
	loader    DatasetLoader
	publisher ReportPublisher
	prompter  *Prompter
	console   *presentation.Console
	pageSize  int
}

// NewSession publisher may be nil
func NewSession(loader DatasetLoader, publisher ReportPublisher, in io.Reader, out io.Writer, pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Session{
		loader:    loader,
		publisher: publisher,
		prompter:  NewPrompter(in, out),
		console:   presentation.NewConsole(out),
		pageSize:  pageSize,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", componentName, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentName, method, message)
}

// Run explores data until the user does not want to restart or the input ends.
// A dataset that cannot be loaded aborts the run.
func (s *Session) Run(ctx context.Context) error {
	for {
		spec, err := s.SelectFilters()
		if err != nil {
			return endOfInput(err)
		}

		ds, report, err := s.Analyze(spec)
		if err != nil && !errors.Is(err, dataErrors.ErrEmptyDataset) {
			s.console.Warning(fmt.Sprintf("Could not analyze %s: %s", spec.City.Title(), err.Error()))
			return err
		}

		if report == nil {
			s.console.RenderNoData(spec)
		} else {
			s.console.RenderReport(report)
			s.publish(ctx, report)

			if err := s.DisplayRawData(ds); err != nil {
				return endOfInput(err)
			}
		}

		restart, err := s.prompter.Confirm("\nWould you like to restart? Enter yes or no.\n")
		if err != nil {
			return endOfInput(err)
		}
		if !restart {
			return nil
		}
	}
}

// SelectFilters asks city, month and day until the user confirms them
func (s *Session) SelectFilters() (filter.Spec, error) {
	cities := make([]string, 0, len(filter.Cities()))
	cityTitles := make([]string, 0, len(filter.Cities()))
	for _, city := range filter.Cities() {
		cities = append(cities, string(city))
		cityTitles = append(cityTitles, city.Title())
	}
	months := append([]string{allOption}, filter.MonthNames()...)
	days := append([]string{allOption}, filter.DayNames()...)

	for {
		s.console.Println("\nHello! Let's explore some US bikeshare data!")

		city, err := s.prompter.Choose(
			fmt.Sprintf("Which city are you interested in analyzing data for? (%s): ", strings.Join(cityTitles, ", ")),
			cities,
			"This is not a valid city. Please try again.\n",
		)
		if err != nil {
			return filter.Spec{}, err
		}

		month, err := s.prompter.Choose(
			fmt.Sprintf("Which month are you interested in analyzing data for? (%s): ", optionList(months)),
			months,
			"This is not a valid month. Please try again.\n",
		)
		if err != nil {
			return filter.Spec{}, err
		}

		day, err := s.prompter.Choose(
			fmt.Sprintf("Which day are you interested in analyzing data for? (%s): ", optionList(days)),
			days,
			"This is not a valid day. Please try again.\n",
		)
		if err != nil {
			return filter.Spec{}, err
		}

		spec, err := filter.NewSpec(city, month, day)
		if err != nil {
			return filter.Spec{}, err
		}

		s.console.RenderSelection(spec)
		confirmed, err := s.prompter.Confirm("Do you wish to continue analyzing Bikeshare data with the above criteria? (yes or no): ")
		if err != nil {
			return filter.Spec{}, err
		}
		if confirmed {
			s.console.Separator()
			return spec, nil
		}
	}
}

// Analyze loads the city, applies the filters and builds the report. When the filters leave
// no trips the filtered dataset is returned together with ErrEmptyDataset and a nil report.
func (s *Session) Analyze(spec filter.Spec) (*dataset.Dataset, *stats.Report, error) {
	ds, err := s.loader.Load(spec.City)
	if err != nil {
		log.Error(s.getLogMessage("Analyze", fmt.Sprintf("error loading %s", spec.City), err))
		return nil, nil, err
	}

	filtered, err := ds.Filter(spec.Month, spec.Day)
	if err != nil {
		return nil, nil, err
	}
	log.Debug(s.getLogMessage("Analyze", fmt.Sprintf("%d of %d trips match month %s and day %s", filtered.Len(), ds.Len(), spec.Month, spec.Day), nil))

	catalog, err := s.loader.LoadStations(spec.City)
	if err != nil {
		// distances are optional, the report can be built without them
		log.Warn(s.getLogMessage("Analyze", "station catalog not available", err))
		catalog = nil
	}

	var locator stats.StationLocator
	if len(catalog) > 0 {
		locator = catalog
	}

	report, err := stats.BuildReport(filtered, spec, locator)
	if err != nil {
		return filtered, nil, err
	}
	return filtered, report, nil
}

// DisplayRawData shows the trips page by page while the user asks for more
func (s *Session) DisplayRawData(ds *dataset.Dataset) error {
	show, err := s.prompter.Confirm(fmt.Sprintf("\nWould you like to see the first %d lines of raw data based on the filters you provided? Enter yes or no: ", s.pageSize))
	if err != nil || !show {
		return err
	}

	offset := 0
	for {
		s.console.RenderRows(ds.Page(offset, s.pageSize), offset, ds.Schema)
		offset += s.pageSize

		if offset >= ds.Len() {
			s.console.Println("Please note that there are no other data to display.")
			return nil
		}

		more, err := s.prompter.Confirm(fmt.Sprintf("\nWould you like to see the next %d lines of raw data based on the filters you provided? Enter yes or no: ", s.pageSize))
		if err != nil || !more {
			return err
		}
	}
}

func (s *Session) publish(ctx context.Context, report *stats.Report) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, report)
	if err != nil {
		log.Error(s.getLogMessage("publish", fmt.Sprintf("error publishing report %s", report.RunID), err))
		return
	}
	log.Info(s.getLogMessage("publish", fmt.Sprintf("report %s published", report.RunID), nil))
}

func optionList(options []string) string {
	titles := make([]string, len(options))
	for i, option := range options {
		titles[i] = strings.ToUpper(option[:1]) + option[1:]
	}
	return strings.Join(titles, ", ")
}

// endOfInput running out of answers is a normal way of leaving the session
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
