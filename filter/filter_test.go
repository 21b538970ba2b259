package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/calendar"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils/testutil"
)

func newTestDataset() *trip.Dataset {
	return testutil.Dataset("chicago", trip.Schema{},
		testutil.Ride(1, 0, 8, "A", "B", 300, "Subscriber"),
		testutil.Ride(1, 2, 9, "A", "C", 200, "Customer"),
		testutil.Ride(2, 0, 17, "B", "A", 100, "Subscriber"),
		testutil.Ride(3, 4, 8, "C", "B", 400, "Subscriber"),
		testutil.Ride(1, 0, 18, "B", "C", 500, "Customer"),
		testutil.Ride(6, 6, 23, "C", "A", 600, "Subscriber"),
		testutil.Ride(2, 2, 7, "A", "B", 700, "Customer"),
	)
}

func ids(set *trip.FilteredSet) []string {
	var result []string
	set.Each(func(record trip.TripData) {
		result = append(result, record.ID)
	})
	return result
}

func TestApplyWithoutFiltersIsIdentity(t *testing.T) {
	dataset := newTestDataset()
	set := Apply(dataset, "", "")

	require.Equal(t, dataset.Len(), set.Len())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6"}, ids(set))
	assert.False(t, set.Filters().HasMonth())
	assert.False(t, set.Filters().HasDay())
}

func TestApplyByMonth(t *testing.T) {
	set := Apply(newTestDataset(), "january", "")

	assert.Equal(t, []string{"0", "1", "4"}, ids(set))
	set.Each(func(record trip.TripData) {
		assert.Equal(t, calendar.MonthIndex("january"), record.Month)
	})
	assert.Equal(t, 1, set.Filters().MonthIndex)
}

func TestApplyByDay(t *testing.T) {
	set := Apply(newTestDataset(), "", "Wednesday")

	assert.Equal(t, []string{"1", "6"}, ids(set))
	set.Each(func(record trip.TripData) {
		assert.Equal(t, calendar.WeekdayIndex("wednesday"), record.DayOfWeek)
	})
	assert.Equal(t, "wednesday", set.Filters().Day)
}

func TestApplyIsConjunctive(t *testing.T) {
	dataset := newTestDataset()
	for _, month := range calendar.Months {
		for _, day := range calendar.Weekdays {
			both := ids(Apply(dataset, month, day))
			byDay := map[string]bool{}
			for _, id := range ids(Apply(dataset, "", day)) {
				byDay[id] = true
			}

			var intersection []string
			for _, id := range ids(Apply(dataset, month, "")) {
				if byDay[id] {
					intersection = append(intersection, id)
				}
			}
			assert.Equal(t, intersection, both, "month %s day %s", month, day)
		}
	}
}

func TestApplyMayReturnAnEmptySet(t *testing.T) {
	dataset := testutil.Dataset("chicago", trip.Schema{},
		testutil.Ride(1, 0, 8, "A", "B", 300, "Subscriber"),
		testutil.Ride(1, 0, 8, "A", "B", 600, "Customer"),
	)

	set := Apply(dataset, "february", "")
	assert.True(t, set.IsEmpty())
	assert.Equal(t, 0, set.Len())
}

func TestNewFiltersNormalizesNames(t *testing.T) {
	filters := NewFilters(" June ", "SUNDAY")
	assert.Equal(t, "june", filters.Month)
	assert.Equal(t, 6, filters.MonthIndex)
	assert.Equal(t, "sunday", filters.Day)
	assert.Equal(t, 6, filters.DayIndex)

	filters = NewFilters("  ", "")
	assert.False(t, filters.HasMonth())
	assert.False(t, filters.HasDay())
}
