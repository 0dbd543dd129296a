package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikeshare/domain/entities/station"
	dataErrors "bikeshare/domain/errors"
)

const (
	stationNameColumn      = "name"
	stationLatitudeColumn  = "latitude"
	stationLongitudeColumn = "longitude"
)

// parseStations reads a csv with name, latitude and longitude columns, in any order
func parseStations(reader io.Reader, city string) ([]station.StationData, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: stations header: %s", dataErrors.ErrMissingColumn, err.Error())
	}

	positions := make(map[string]int, len(header))
	for idx, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	nameIdx, okName := positions[stationNameColumn]
	latIdx, okLat := positions[stationLatitudeColumn]
	lonIdx, okLon := positions[stationLongitudeColumn]
	if !okName || !okLat || !okLon {
		return nil, fmt.Errorf("%w: stations file needs %s, %s and %s", dataErrors.ErrMissingColumn, stationNameColumn, stationLatitudeColumn, stationLongitudeColumn)
	}

	var stations []station.StationData
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		latitude, errLat := strconv.ParseFloat(strings.TrimSpace(row[latIdx]), 64)
		longitude, errLon := strconv.ParseFloat(strings.TrimSpace(row[lonIdx]), 64)
		if errLat != nil || errLon != nil || !isFinite(latitude) || !isFinite(longitude) {
			return nil, fmt.Errorf("%w: invalid coordinates for %q", dataErrors.ErrInvalidStationData, row[nameIdx])
		}

		stations = append(stations, station.StationData{
			City:      city,
			Name:      row[nameIdx],
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return stations, nil
}
