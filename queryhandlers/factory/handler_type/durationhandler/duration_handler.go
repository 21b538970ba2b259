package durationhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "3"
	handlerType = "duration-handler"
)

// DurationHandler computes the total and average trip duration
type DurationHandler struct{}

func NewDurationHandler() *DurationHandler {
	return &DurationHandler{}
}

func (dh *DurationHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (dh *DurationHandler) GetQueryID() string {
	return queryID
}

func (dh *DurationHandler) GetType() string {
	return handlerType
}

// GenerateResponse stores in response the duration stats of set
func (dh *DurationHandler) GenerateResponse(set *trip.FilteredSet, response *queryresponse.QueryResponse) error {
	if set.IsEmpty() {
		log.Debug(dh.getLogMessage("GenerateResponse", "nothing to compute", handlerErrors.ErrEmptySet))
		return handlerErrors.ErrEmptySet
	}

	stats := GetDurationStats(set)
	response.Duration = &stats

	log.Debug(dh.getLogMessage("GenerateResponse", fmt.Sprintf("AVG duration %.4f", stats.Mean), nil))
	return nil
}

// GetDurationStats returns the sum and the mean of the trip durations of set. Set must not be empty.
func GetDurationStats(set *trip.FilteredSet) queryresponse.DurationStats {
	accumulator := durationaccumulator.NewDurationAccumulator()
	set.Each(func(record trip.TripData) {
		accumulator.UpdateAccumulator(record.Duration)
	})

	return queryresponse.DurationStats{
		Count: accumulator.Counter,
		Total: accumulator.GetTotalDuration(),
		Mean:  accumulator.GetAverageDuration(),
	}
}
