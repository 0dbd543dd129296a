package errors

import "errors"

var (
	ErrDataUnavailable    = errors.New("data unavailable")
	ErrEmptyDataset       = errors.New("empty dataset")
	ErrInvalidFilterValue = errors.New("invalid filter value")

	ErrInvalidTripData      = errors.New("invalid trip data")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidDurationType  = errors.New("invalid duration type")
	ErrInvalidBirthYearType = errors.New("invalid birth year type")
	ErrMissingColumn        = errors.New("missing column")
	ErrInvalidStationData   = errors.New("invalid station data")
)
