package recordstore

import (
	"context"
	"fmt"
	"strings"

	"bikeshare/domain/entities/trip"
)

// Store gives access to the rides of each city. Every call to Load reads the whole dataset again.
type Store interface {
	Load(ctx context.Context, city string) (*trip.Dataset, error)
}

// NormalizeCity returns the key used to look up city
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Location returns the location of the dataset of city: a file name or a table name depending on the source
func Location(cities map[string]string, city string) (string, error) {
	location, ok := cities[NormalizeCity(city)]
	if !ok || location == "" {
		return "", fmt.Errorf("%w: %q", ErrCityNotFound, city)
	}
	return location, nil
}
