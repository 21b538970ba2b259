package recordstore

import "errors"

var (
	ErrCityNotFound      = errors.New("city not found")
	ErrMalformedData     = errors.New("malformed data")
	ErrUnsupportedSource = errors.New("unsupported data source")
	ErrInvalidLocation   = errors.New("invalid city location")
)
