package stats

import (
	"fmt"

	"bikeshare/domain/business/counter"
	"bikeshare/domain/entities/dataset"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// StationLocator finds a station by name. station.Catalog implements it
type StationLocator interface {
	Locate(name string) (station.StationData, bool)
}

// StationStats most popular stations and trip
// + StartStation: most commonly used start station
// + EndStation: most commonly used end station
// + Trip: most frequent combination of start and end station
// + TripDistanceKm: straight distance of Trip, only set when both stations could be located
type StationStats struct {
	StartStation   counter.Count[string]     `json:"start_station"`
	EndStation     counter.Count[string]     `json:"end_station"`
	Trip           counter.Count[trip.Route] `json:"trip"`
	TripDistanceKm *float64                  `json:"trip_distance_km,omitempty"`
}

// ComputeStationStats locator may be nil
func ComputeStationStats(ds *dataset.Dataset, locator StationLocator) (*StationStats, error) {
	if ds.IsEmpty() {
		return nil, fmt.Errorf("%w: cannot compute station stats of %s", dataErrors.ErrEmptyDataset, ds.City)
	}

	starts := counter.NewCounter[string]()
	ends := counter.NewCounter[string]()
	routes := counter.NewCounter[trip.Route]()
	for _, record := range ds.Records() {
		starts.UpdateCounter(record.StartStation)
		ends.UpdateCounter(record.EndStation)
		routes.UpdateCounter(record.Route())
	}

	startStation, _ := starts.Mode()
	endStation, _ := ends.Mode()
	route, _ := routes.Mode()

	stationStats := &StationStats{
		StartStation: startStation,
		EndStation:   endStation,
		Trip:         route,
	}

	if locator != nil {
		from, fromOK := locator.Locate(route.Value.Start)
		to, toOK := locator.Locate(route.Value.End)
		if fromOK && toOK {
			distance := from.DistanceKm(to)
			stationStats.TripDistanceKm = &distance
		}
	}

	return stationStats, nil
}
