package durationaccumulator

import (
	"math/big"
)

// DurationAccumulator struct that collects the duration of a group of rides.
// + Counter: counts the amount of rides collected
// + total: exact sum of durations. Every float64 is representable as a rational, so no precision is lost
// while adding, only when the total or the average are read.
type DurationAccumulator struct {
	Counter int
	total   *big.Rat
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{
		total: new(big.Rat),
	}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	value := new(big.Rat).SetFloat64(duration)
	if value == nil {
		panic("[DurationAccumulator] cannot accumulate a non finite duration")
	}
	da.Counter += 1
	da.total.Add(da.total, value)
}

func (da *DurationAccumulator) Merge(other *DurationAccumulator) *DurationAccumulator {
	return &DurationAccumulator{
		Counter: da.Counter + other.Counter,
		total:   new(big.Rat).Add(da.total, other.total),
	}
}

// GetTotalDuration returns the sum of all the durations, rounded to the nearest float64
func (da *DurationAccumulator) GetTotalDuration() float64 {
	total, _ := da.total.Float64()
	return total
}

// GetAverageDuration returns total / counter, rounded to the nearest float64
func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	average := new(big.Rat).Quo(da.total, new(big.Rat).SetInt64(int64(da.Counter)))
	result, _ := average.Float64()
	return result
}
