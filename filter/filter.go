package filter

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/calendar"
	"bikeshare/domain/entities/trip"
)

// Apply returns a view with the rides of dataset that started in month and on day. An empty month or day means
// no restriction on it, when both are given a ride must match both. Names must belong to the calendar
// vocabulary. The view keeps the order of the dataset and may be empty.
func Apply(dataset *trip.Dataset, month string, day string) *trip.FilteredSet {
	filters := NewFilters(month, day)

	indexes := make([]int, 0, dataset.Len())
	for idx := range dataset.Records {
		if matches(&dataset.Records[idx], filters) {
			indexes = append(indexes, idx)
		}
	}

	log.Debugf("[city: %s][month: %s][day: %s][method: Apply] %v of %v rides match the filters", dataset.City, filters.Month, filters.Day, len(indexes), dataset.Len())
	return trip.NewFilteredSet(dataset, filters, indexes)
}

// NewFilters normalizes month and day and resolves their position in the calendar vocabulary
func NewFilters(month string, day string) trip.Filters {
	filters := trip.Filters{
		Month: strings.ToLower(strings.TrimSpace(month)),
		Day:   strings.ToLower(strings.TrimSpace(day)),
	}
	if filters.HasMonth() {
		filters.MonthIndex = calendar.MonthIndex(filters.Month)
	}
	if filters.HasDay() {
		filters.DayIndex = calendar.WeekdayIndex(filters.Day)
	}
	return filters
}

func matches(record *trip.TripData, filters trip.Filters) bool {
	if filters.HasMonth() && record.Month != filters.MonthIndex {
		return false
	}
	if filters.HasDay() && record.DayOfWeek != filters.DayIndex {
		return false
	}
	return true
}
