// Package testutil builds rides and datasets for tests.
package testutil

import (
	"strconv"
	"time"

	"bikeshare/domain/entities/trip"
)

// StartTime returns a moment of 2017 in the given month (1 = january), day of week (0 = monday) and hour
func StartTime(month int, dayOfWeek int, hour int) time.Time {
	start := time.Date(2017, time.Month(month), 1, hour, 0, 0, 0, time.UTC)
	for (int(start.Weekday())+6)%7 != dayOfWeek {
		start = start.AddDate(0, 0, 1)
	}
	return start
}

// Ride returns a ride with derived fields matching month, dayOfWeek and hour
func Ride(month int, dayOfWeek int, hour int, start string, end string, duration float64, userType string) trip.TripData {
	startTime := StartTime(month, dayOfWeek, hour)
	return trip.NewTripData("", startTime, startTime.Add(time.Duration(duration)*time.Second).Format("2006-01-02 15:04:05"), duration, start, end, userType)
}

// WithRider sets gender and birth year of ride
func WithRider(ride trip.TripData, gender string, birthYear int) trip.TripData {
	ride.Gender = gender
	ride.BirthYear = birthYear
	return ride
}

// Dataset returns a dataset for city with records, numbering their IDs in order
func Dataset(city string, schema trip.Schema, records ...trip.TripData) *trip.Dataset {
	for idx := range records {
		if records[idx].ID == "" {
			records[idx].ID = strconv.Itoa(idx)
		}
	}
	return &trip.Dataset{City: city, Schema: schema, Records: records}
}

// All returns an unfiltered view of dataset
func All(dataset *trip.Dataset) *trip.FilteredSet {
	indexes := make([]int, dataset.Len())
	for idx := range indexes {
		indexes[idx] = idx
	}
	return trip.NewFilteredSet(dataset, trip.Filters{}, indexes)
}
