package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const componentName = "loader"

// Loader reads the trips of a city into a Dataset
type Loader struct {
	config Config
}

func NewLoader(config Config) *Loader {
	return &Loader{
		config: config,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", componentName, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", componentName, method, message)
}

// Load reads every trip of the city and derives its calendar fields. Any problem reading or
// parsing the source is reported as ErrDataUnavailable: a partial dataset is never returned.
func (l *Loader) Load(city filter.City) (*dataset.Dataset, error) {
	source, err := l.source(city)
	if err != nil {
		return nil, err
	}

	path := l.resolve(source.TripsFile)
	file, err := os.Open(path)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("%w: %s: %s", dataErrors.ErrDataUnavailable, city, err.Error())
	}

	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Error(l.getLogMessage("Load", fmt.Sprintf("error closing %s", path), err))
		}
	}(file)

	records, err := l.parseTrips(file, source.Schema)
	if err != nil {
		log.Error(l.getLogMessage("Load", fmt.Sprintf("error parsing %s", path), err))
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrDataUnavailable, city, err)
	}

	log.Info(l.getLogMessage("Load", fmt.Sprintf("%d trips loaded for %s", len(records), city), nil))
	return dataset.New(city, source.Schema, records), nil
}

// LoadStations reads the station catalog of the city. A city without a configured
// catalog returns an empty one.
func (l *Loader) LoadStations(city filter.City) (station.Catalog, error) {
	source, err := l.source(city)
	if err != nil {
		return nil, err
	}

	if source.StationsFile == "" {
		return station.Catalog{}, nil
	}

	path := l.resolve(source.StationsFile)
	file, err := os.Open(path)
	if err != nil {
		log.Error(l.getLogMessage("LoadStations", fmt.Sprintf("error opening %s", path), err))
		return nil, fmt.Errorf("%w: stations of %s: %s", dataErrors.ErrDataUnavailable, city, err.Error())
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			log.Error(l.getLogMessage("LoadStations", fmt.Sprintf("error closing %s", path), err))
		}
	}(file)

	stations, err := parseStations(file, string(city))
	if err != nil {
		log.Error(l.getLogMessage("LoadStations", fmt.Sprintf("error parsing %s", path), err))
		return nil, fmt.Errorf("%w: stations of %s: %w", dataErrors.ErrDataUnavailable, city, err)
	}

	log.Debug(l.getLogMessage("LoadStations", fmt.Sprintf("%d stations loaded for %s", len(stations), city), nil))
	return station.NewCatalog(stations), nil
}

func (l *Loader) source(city filter.City) (CitySource, error) {
	source, ok := l.config.Cities[string(city)]
	if !ok {
		return CitySource{}, fmt.Errorf("%w: no data source for city %q", dataErrors.ErrInvalidFilterValue, city)
	}
	return source, nil
}

func (l *Loader) resolve(path string) string {
	if filepath.IsAbs(path) || l.config.DataDir == "" {
		return path
	}
	return filepath.Join(l.config.DataDir, path)
}

// columnIndexes position of each configured column inside the header. Optional columns
// the schema does not declare are set to -1.
type columnIndexes struct {
	startTime    int
	endTime      int
	tripDuration int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

func (l *Loader) getColumnIndexes(header []string, schema dataset.Schema) (columnIndexes, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = idx
	}

	var missing []string
	find := func(name string, required bool) int {
		if !required {
			return -1
		}
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return idx
	}

	columns := l.config.Columns
	indexes := columnIndexes{
		startTime:    find(columns.StartTime, true),
		endTime:      find(columns.EndTime, true),
		tripDuration: find(columns.TripDuration, true),
		startStation: find(columns.StartStation, true),
		endStation:   find(columns.EndStation, true),
		userType:     find(columns.UserType, true),
		gender:       find(columns.Gender, schema.HasGender),
		birthYear:    find(columns.BirthYear, schema.HasBirthYear),
	}

	if len(missing) > 0 {
		return columnIndexes{}, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, strings.Join(missing, ", "))
	}
	return indexes, nil
}

func (l *Loader) parseTrips(reader io.Reader, schema dataset.Schema) ([]trip.TripData, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", dataErrors.ErrMissingColumn)
		}
		return nil, err
	}

	indexes, err := l.getColumnIndexes(header, schema)
	if err != nil {
		return nil, err
	}

	var records []trip.TripData
	line := 1
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tripData, err := l.getTripData(row, indexes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, tripData)
	}

	return records, nil
}

func (l *Loader) getTripData(row []string, indexes columnIndexes) (trip.TripData, error) {
	startTime, err := time.Parse(l.config.TimeLayout, strings.TrimSpace(row[indexes.startTime]))
	if err != nil {
		log.Debugf("Invalid start time: %v", row[indexes.startTime])
		return trip.TripData{}, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
	}

	var endTime time.Time
	if endTimeStr := strings.TrimSpace(row[indexes.endTime]); endTimeStr != "" {
		endTime, err = time.Parse(l.config.TimeLayout, endTimeStr)
		if err != nil {
			log.Debugf("Invalid end time: %v", row[indexes.endTime])
			return trip.TripData{}, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDate, dataErrors.ErrInvalidTripData)
		}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(row[indexes.tripDuration]), 64)
	if err != nil || duration < 0 || !isFinite(duration) {
		log.Debugf("Invalid duration: %v", row[indexes.tripDuration])
		return trip.TripData{}, fmt.Errorf("%s: %w", dataErrors.ErrInvalidDurationType, dataErrors.ErrInvalidTripData)
	}

	tripData := trip.TripData{
		StartTime:    startTime,
		EndTime:      endTime,
		StartStation: row[indexes.startStation],
		EndStation:   row[indexes.endStation],
		Duration:     duration,
		UserType:     strings.TrimSpace(row[indexes.userType]),
	}

	if indexes.gender >= 0 {
		tripData.Gender = strings.TrimSpace(row[indexes.gender])
	}

	if indexes.birthYear >= 0 {
		// birth years come as floats, e.g. 1992.0
		if birthYearStr := strings.TrimSpace(row[indexes.birthYear]); birthYearStr != "" {
			birthYear, err := strconv.ParseFloat(birthYearStr, 64)
			if err != nil || !isFinite(birthYear) {
				log.Debugf("Invalid birth year: %v", row[indexes.birthYear])
				return trip.TripData{}, fmt.Errorf("%s: %w", dataErrors.ErrInvalidBirthYearType, dataErrors.ErrInvalidTripData)
			}
			tripData.BirthYear = int(birthYear)
			tripData.HasBirthYear = true
		}
	}

	tripData.DeriveCalendarFields()
	return tripData, nil
}

// isFinite ParseFloat accepts NaN and Inf without error
func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
