package stationhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	"bikeshare/filter"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
	"bikeshare/utils/testutil"
)

func TestStationStats(t *testing.T) {
	dataset := testutil.Dataset("chicago", trip.Schema{},
		testutil.Ride(1, 0, 8, "A", "B", 300, "Subscriber"),
		testutil.Ride(1, 0, 8, "A", "B", 600, "Customer"),
	)

	stats := GetStationStats(testutil.All(dataset))
	assert.Equal(t, queryresponse.ValueCount{Value: "A", Count: 2}, stats.TopStartStation)
	assert.Equal(t, queryresponse.ValueCount{Value: "B", Count: 2}, stats.TopEndStation)
	assert.Equal(t, queryresponse.StationPair{Start: "A", End: "B", Count: 2}, stats.TopTrip)
}

func TestTopTripIsGroupedByPair(t *testing.T) {
	// A is the top start and Z the top end, but no ride goes from A to Z
	dataset := testutil.Dataset("chicago", trip.Schema{},
		testutil.Ride(1, 0, 8, "A", "X", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "A", "Y", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "A", "W", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "B", "Z", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "C", "Z", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "D", "Z", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "D", "Z", 1, "Subscriber"),
	)

	stats := GetStationStats(testutil.All(dataset))
	assert.Equal(t, "A", stats.TopStartStation.Value)
	assert.Equal(t, "Z", stats.TopEndStation.Value)
	assert.Equal(t, queryresponse.StationPair{Start: "D", End: "Z", Count: 2}, stats.TopTrip)

	jointCount := 0
	for _, record := range dataset.Records {
		if record.StartStation == stats.TopStartStation.Value && record.EndStation == stats.TopEndStation.Value {
			jointCount++
		}
	}
	assert.GreaterOrEqual(t, stats.TopTrip.Count, jointCount)
}

func TestTopTripTieBreakIsLexicalOnPair(t *testing.T) {
	dataset := testutil.Dataset("chicago", trip.Schema{},
		testutil.Ride(1, 0, 8, "Clark St", "Wells St", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "Clark", "Zeta", 1, "Subscriber"),
		testutil.Ride(1, 0, 8, "Clark St", "Adams St", 1, "Subscriber"),
	)

	stats := GetStationStats(testutil.All(dataset))
	assert.Equal(t, queryresponse.StationPair{Start: "Clark", End: "Zeta", Count: 1}, stats.TopTrip)
	assert.Equal(t, queryresponse.ValueCount{Value: "Clark St", Count: 2}, stats.TopStartStation)
	assert.Equal(t, queryresponse.ValueCount{Value: "Adams St", Count: 1}, stats.TopEndStation)
}

func TestGenerateResponse(t *testing.T) {
	dataset := testutil.Dataset("washington", trip.Schema{},
		testutil.Ride(4, 2, 12, "A", "B", 1, "Subscriber"),
	)
	handler := NewStationHandler()

	response := queryresponse.NewQueryResponse(entities.Metadata{}, 1)
	require.NoError(t, handler.GenerateResponse(testutil.All(dataset), response))
	require.NotNil(t, response.Stations)
	assert.Equal(t, "A", response.Stations.TopStartStation.Value)

	err := handler.GenerateResponse(filter.Apply(dataset, "may", ""), response)
	assert.ErrorIs(t, err, handlerErrors.ErrEmptySet)
}
