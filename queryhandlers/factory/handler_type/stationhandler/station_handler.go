package stationhandler

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "2"
	handlerType = "station-handler"
	// pairSeparator sorts before any printable character, so ordering the joined keys is the same as ordering
	// the (start, end) tuples
	pairSeparator = "\x00"
)

// StationHandler computes the most popular stations and trip
type StationHandler struct{}

func NewStationHandler() *StationHandler {
	return &StationHandler{}
}

func (sh *StationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (sh *StationHandler) GetQueryID() string {
	return queryID
}

func (sh *StationHandler) GetType() string {
	return handlerType
}

// GenerateResponse stores in response the station stats of set
func (sh *StationHandler) GenerateResponse(set *trip.FilteredSet, response *queryresponse.QueryResponse) error {
	if set.IsEmpty() {
		log.Debug(sh.getLogMessage("GenerateResponse", "nothing to compute", handlerErrors.ErrEmptySet))
		return handlerErrors.ErrEmptySet
	}

	stats := GetStationStats(set)
	response.Stations = &stats

	log.Debug(sh.getLogMessage("GenerateResponse", fmt.Sprintf("station stats generated for %v rides", set.Len()), nil))
	return nil
}

// GetStationStats returns the most common start station, end station and trip. The trip is the combination
// of start and end station that appears the most, counted together. Set must not be empty.
func GetStationStats(set *trip.FilteredSet) queryresponse.StationStats {
	startStations := frequencycounter.NewFrequencyCounter[string]()
	endStations := frequencycounter.NewFrequencyCounter[string]()
	trips := frequencycounter.NewFrequencyCounter[string]()

	set.Each(func(record trip.TripData) {
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		trips.UpdateCounter(getPairKey(record.StartStation, record.EndStation))
	})

	topStart := startStations.Mode()
	topEnd := endStations.Mode()
	topTrip := trips.Mode()
	start, end := splitPairKey(topTrip.Value)

	return queryresponse.StationStats{
		TopStartStation: queryresponse.ValueCount{Value: topStart.Value, Count: topStart.Count},
		TopEndStation:   queryresponse.ValueCount{Value: topEnd.Value, Count: topEnd.Count},
		TopTrip: queryresponse.StationPair{
			Start: start,
			End:   end,
			Count: topTrip.Count,
		},
	}
}

func getPairKey(start string, end string) string {
	return start + pairSeparator + end
}

func splitPairKey(key string) (string, string) {
	parts := strings.SplitN(key, pairSeparator, 2)
	return parts[0], parts[1]
}
