package queryresponse

import "bikeshare/domain/entities"

// ValueCount a value and the amount of rides in which it appears
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// IntCount same as ValueCount for numeric values (month, weekday, hour, birth year)
type IntCount struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// TimeStats most frequent times of travel.
// + MostCommonMonth: nil when the rides were filtered by month
// + MostCommonDay: nil when the rides were filtered by day. Value is 0 for monday
// + MostCommonHour: always present
type TimeStats struct {
	MostCommonMonth *IntCount `json:"most_common_month,omitempty"`
	MostCommonDay   *IntCount `json:"most_common_day,omitempty"`
	MostCommonHour  IntCount  `json:"most_common_hour"`
}

// StationPair a combination of start and end station
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

// StationStats most popular stations and trip
type StationStats struct {
	TopStartStation ValueCount  `json:"top_start_station"`
	TopEndStation   ValueCount  `json:"top_end_station"`
	TopTrip         StationPair `json:"top_trip"`
}

// DurationStats total and mean trip duration, in seconds
type DurationStats struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Mean  float64 `json:"mean"`
}

// GenderStats amount of rides per gender. Available is false when the dataset has no gender data.
type GenderStats struct {
	Available bool         `json:"available"`
	Counts    []ValueCount `json:"counts,omitempty"`
}

// BirthYearStats earliest, most recent and most common year of birth. Available is false when the dataset has
// no birth year data.
type BirthYearStats struct {
	Available  bool     `json:"available"`
	Earliest   int      `json:"earliest,omitempty"`
	MostRecent int      `json:"most_recent,omitempty"`
	MostCommon IntCount `json:"most_common,omitempty"`
}

// UserStats stats about bikeshare users. UserTypes is ordered by count descending.
type UserStats struct {
	UserTypes  []ValueCount   `json:"user_types"`
	Genders    GenderStats    `json:"genders"`
	BirthYears BirthYearStats `json:"birth_years"`
}

// MonthCount amount of rides in a month, 1 = january
type MonthCount struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// QueryResponse contains every statistic generated for a filtered set of rides
type QueryResponse struct {
	Metadata     entities.Metadata `json:"metadata"`
	RecordCount  int               `json:"record_count"`
	Time         *TimeStats        `json:"time,omitempty"`
	Stations     *StationStats     `json:"stations,omitempty"`
	Duration     *DurationStats    `json:"duration,omitempty"`
	Users        *UserStats        `json:"users,omitempty"`
	MonthlyRides []MonthCount      `json:"monthly_rides,omitempty"`
}

func NewQueryResponse(metadata entities.Metadata, recordCount int) *QueryResponse {
	return &QueryResponse{
		Metadata:    metadata,
		RecordCount: recordCount,
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}
