package loader

import "bikeshare/domain/entities/dataset"

// ColumnsConfig contains the header name of each column to read
type ColumnsConfig struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time" validate:"required"`
	TripDuration string `yaml:"trip_duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// CitySource describes where the data of a city lives and which optional columns it has.
// StationsFile is optional.
type CitySource struct {
	TripsFile    string         `yaml:"trips_file" validate:"required"`
	StationsFile string         `yaml:"stations_file"`
	Schema       dataset.Schema `yaml:"schema"`
}

type Config struct {
	DataDir    string                `yaml:"data_dir"`
	TimeLayout string                `yaml:"time_layout" validate:"required"`
	Columns    ColumnsConfig         `yaml:"columns"`
	Cities     map[string]CitySource `yaml:"cities" validate:"required,min=1,dive"`
}

// DefaultColumns header names used by the Chicago, New York City and Washington datasets
func DefaultColumns() ColumnsConfig {
	return ColumnsConfig{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		TripDuration: "Trip Duration",
		StartStation: "Start Station",
		EndStation:   "End Station",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}
