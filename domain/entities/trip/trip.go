package trip

import (
	"time"
)

// TripData struct that contains the data of a single ride
// + ID: row label of the ride in its dataset
// + StartTime: moment in which the trip begins
// + EndTime: moment in which the trip ends, as written in the source. Only used for display
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: kind of rider, e.g. Subscriber or Customer
// + Gender: rider gender. Empty if the rider didn't report it or the dataset has no such column
// + BirthYear: rider birth year. Zero if the rider didn't report it or the dataset has no such column
// + Month, DayOfWeek, Hour: derived from StartTime once, see DeriveTimeFields
type TripData struct {
	ID           string    `json:"id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Duration     float64   `json:"trip_duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
	Month        int       `json:"month"`
	DayOfWeek    int       `json:"day_of_week"`
	Hour         int       `json:"hour"`
}

// NewTripData returns a TripData with its derived fields already set
func NewTripData(id string, startTime time.Time, endTime string, duration float64, startStation string, endStation string, userType string) TripData {
	month, dayOfWeek, hour := DeriveTimeFields(startTime)
	return TripData{
		ID:           id,
		StartTime:    startTime,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Month:        month,
		DayOfWeek:    dayOfWeek,
		Hour:         hour,
	}
}

// DeriveTimeFields returns the calendar month (1-12), the day of the week (monday = 0) and the hour of the day of t
func DeriveTimeFields(t time.Time) (int, int, int) {
	dayOfWeek := (int(t.Weekday()) + 6) % 7
	return int(t.Month()), dayOfWeek, t.Hour()
}

// HasGender returns true if the rider reported a gender
func (td TripData) HasGender() bool {
	return td.Gender != ""
}

// HasBirthYear returns true if the rider reported a birth year
func (td TripData) HasBirthYear() bool {
	return td.BirthYear != 0
}

// Schema describes which optional columns a dataset provides. It's decided once, when the dataset is loaded.
type Schema struct {
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// Dataset all the rides loaded for a city
type Dataset struct {
	City    string
	Schema  Schema
	Records []TripData
}

func (d *Dataset) Len() int {
	return len(d.Records)
}
