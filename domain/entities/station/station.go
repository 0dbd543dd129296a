package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm returns the haversine distance in kilometers between two stations
func (sd StationData) DistanceKm(other StationData) float64 {
	origin := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	destination := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}
	_, km := haversine.Distance(origin, destination)
	return km
}

// Catalog indexes the stations of a city by name
type Catalog map[string]StationData

func NewCatalog(stations []StationData) Catalog {
	catalog := make(Catalog, len(stations))
	for _, s := range stations {
		catalog[s.Name] = s
	}
	return catalog
}

// Locate returns the station with the given name, if known
func (c Catalog) Locate(name string) (StationData, bool) {
	s, ok := c[name]
	return s, ok
}
