package calendar

import "strings"

// Months contains the months covered by the datasets, in calendar order. Only the first half of the year is
// available, so the vocabulary stops at june.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Weekdays contains the days of the week starting on monday, matching time.Weekday shifted by one.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MonthIndex returns the 1-based position of name in Months. The caller is expected to pass a valid name,
// an unknown one returns 0.
func MonthIndex(name string) int {
	return indexOf(Months, name) + 1
}

// WeekdayIndex returns the 0-based position of name in Weekdays (monday = 0). An unknown name returns -1.
func WeekdayIndex(name string) int {
	return indexOf(Weekdays, name)
}

// MonthName is the inverse of MonthIndex
func MonthName(index int) (string, bool) {
	if index < 1 || index > len(Months) {
		return "", false
	}
	return Months[index-1], true
}

// WeekdayName is the inverse of WeekdayIndex
func WeekdayName(index int) (string, bool) {
	if index < 0 || index >= len(Weekdays) {
		return "", false
	}
	return Weekdays[index], true
}

// IsMonth returns true if name belongs to the month vocabulary
func IsMonth(name string) bool {
	return indexOf(Months, name) >= 0
}

// IsWeekday returns true if name belongs to the weekday vocabulary
func IsWeekday(name string) bool {
	return indexOf(Weekdays, name) >= 0
}

func indexOf(names []string, name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for idx := range names {
		if names[idx] == name {
			return idx
		}
	}
	return -1
}
