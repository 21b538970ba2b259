package timehandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/calendar"
	"bikeshare/domain/entities/trip"
	handlerErrors "bikeshare/queryhandlers/factory/handler_type/errors"
)

const (
	queryID     = "1"
	handlerType = "time-handler"
)

// TimeHandler computes the most frequent times of travel
type TimeHandler struct{}

func NewTimeHandler() *TimeHandler {
	return &TimeHandler{}
}

func (th *TimeHandler) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: ERROR] %s: %s", handlerType, queryID, method, message, err.Error())
	}
	return fmt.Sprintf("[handler: %s][query: %s][method: %s][status: OK] %s", handlerType, queryID, method, message)
}

func (th *TimeHandler) GetQueryID() string {
	return queryID
}

// GetType returns handler type
func (th *TimeHandler) GetType() string {
	return handlerType
}

// GenerateResponse stores in response the time stats of set. When the set was not filtered by month the
// rides per month are stored too, they are the input of the riders chart.
func (th *TimeHandler) GenerateResponse(set *trip.FilteredSet, response *queryresponse.QueryResponse) error {
	if set.IsEmpty() {
		log.Debug(th.getLogMessage("GenerateResponse", "nothing to compute", handlerErrors.ErrEmptySet))
		return handlerErrors.ErrEmptySet
	}

	stats := GetTimeStats(set)
	response.Time = &stats
	if !set.Filters().HasMonth() {
		response.MonthlyRides = GetMonthlySeries(set)
	}

	log.Debug(th.getLogMessage("GenerateResponse", fmt.Sprintf("time stats generated for %v rides", set.Len()), nil))
	return nil
}

// GetTimeStats returns the most common month (only if set wasn't filtered by month), the most common day of
// week (only if set wasn't filtered by day) and the most common hour. Set must not be empty.
func GetTimeStats(set *trip.FilteredSet) queryresponse.TimeStats {
	months := frequencycounter.NewFrequencyCounter[int]()
	days := frequencycounter.NewFrequencyCounter[int]()
	hours := frequencycounter.NewFrequencyCounter[int]()

	set.Each(func(record trip.TripData) {
		months.UpdateCounter(record.Month)
		days.UpdateCounter(record.DayOfWeek)
		hours.UpdateCounter(record.Hour)
	})

	stats := queryresponse.TimeStats{
		MostCommonHour: toIntCount(hours.Mode()),
	}

	filters := set.Filters()
	if !filters.HasMonth() {
		month := toIntCount(months.Mode())
		stats.MostCommonMonth = &month
	}
	if !filters.HasDay() {
		day := toIntCount(days.Mode())
		stats.MostCommonDay = &day
	}
	return stats
}

// GetMonthlySeries returns the amount of rides per month, in calendar order. Months without rides are omitted.
func GetMonthlySeries(set *trip.FilteredSet) []queryresponse.MonthCount {
	months := frequencycounter.NewFrequencyCounter[int]()
	set.Each(func(record trip.TripData) {
		months.UpdateCounter(record.Month)
	})

	series := make([]queryresponse.MonthCount, 0, months.Len())
	for _, entry := range months.ByValue() {
		name, ok := calendar.MonthName(entry.Value)
		if !ok {
			name = fmt.Sprintf("month %v", entry.Value)
		}
		series = append(series, queryresponse.MonthCount{
			Month: entry.Value,
			Name:  name,
			Count: entry.Count,
		})
	}
	return series
}

func toIntCount(entry frequencycounter.Entry[int]) queryresponse.IntCount {
	return queryresponse.IntCount{Value: entry.Value, Count: entry.Count}
}
