package factory

import (
	"fmt"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/trip"
	"bikeshare/queryhandlers/factory/handler_type/durationhandler"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
	"bikeshare/queryhandlers/factory/handler_type/stationhandler"
	"bikeshare/queryhandlers/factory/handler_type/timehandler"
	"bikeshare/queryhandlers/factory/handler_type/userhandler"
)

const (
	TimeHandlerType     = "time-handler"
	StationHandlerType  = "station-handler"
	DurationHandlerType = "duration-handler"
	UserHandlerType     = "user-handler"
)

// HandlerTypes is the order in which the stats are computed and shown
var HandlerTypes = []string{TimeHandlerType, StationHandlerType, DurationHandlerType, UserHandlerType}

type Handler interface {
	GetQueryID() string
	GetType() string
	GenerateResponse(set *trip.FilteredSet, response *queryresponse.QueryResponse) error
}

func NewQueryHandler(handlerType string) (Handler, error) {
	switch handlerType {
	case TimeHandlerType:
		return timehandler.NewTimeHandler(), nil
	case StationHandlerType:
		return stationhandler.NewStationHandler(), nil
	case DurationHandlerType:
		return durationhandler.NewDurationHandler(), nil
	case UserHandlerType:
		return userhandler.NewUserHandler(), nil
	}

	return nil, fmt.Errorf("[method: NewQueryHandler][status: error] %w: %s", handlerErrors.ErrInvalidHandlerType, handlerType)
}

// NewQueryHandlers returns one handler per type of HandlerTypes
func NewQueryHandlers() []Handler {
	handlers := make([]Handler, 0, len(HandlerTypes))
	for _, handlerType := range HandlerTypes {
		handler, err := NewQueryHandler(handlerType)
		if err != nil {
			panic(err)
		}
		handlers = append(handlers, handler)
	}
	return handlers
}
