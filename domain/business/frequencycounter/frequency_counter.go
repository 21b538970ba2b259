package frequencycounter

import (
	"cmp"
	"sort"
)

// Entry a value together with the amount of times it was seen
type Entry[K cmp.Ordered] struct {
	Value K
	Count int
}

// FrequencyCounter counts how many times each value appears.
// Ties between values with the same count are always resolved in favor of the smallest value.
type FrequencyCounter[K cmp.Ordered] struct {
	counts map[K]int
	total  int
}

func NewFrequencyCounter[K cmp.Ordered]() *FrequencyCounter[K] {
	return &FrequencyCounter[K]{
		counts: make(map[K]int),
	}
}

// UpdateCounter adds one occurrence of value
func (fc *FrequencyCounter[K]) UpdateCounter(value K) {
	fc.counts[value] += 1
	fc.total += 1
}

// GetCounter returns the occurrences of value
func (fc *FrequencyCounter[K]) GetCounter(value K) int {
	return fc.counts[value]
}

// Total returns the amount of occurrences counted, all values included
func (fc *FrequencyCounter[K]) Total() int {
	return fc.total
}

// Len returns the amount of distinct values
func (fc *FrequencyCounter[K]) Len() int {
	return len(fc.counts)
}

// Merge returns a new FrequencyCounter with the occurrences of both counters
func (fc *FrequencyCounter[K]) Merge(other *FrequencyCounter[K]) *FrequencyCounter[K] {
	merged := NewFrequencyCounter[K]()
	for value, count := range fc.counts {
		merged.counts[value] += count
	}
	for value, count := range other.counts {
		merged.counts[value] += count
	}
	merged.total = fc.total + other.total
	return merged
}

// Mode returns the most frequent value and its count. When several values share the maximum count the
// smallest one is returned. The counter must not be empty.
func (fc *FrequencyCounter[K]) Mode() Entry[K] {
	if fc.total == 0 {
		panic("[FrequencyCounter] cannot get mode, counter is empty")
	}

	var mode Entry[K]
	first := true
	for value, count := range fc.counts {
		if first || count > mode.Count || (count == mode.Count && value < mode.Value) {
			mode = Entry[K]{Value: value, Count: count}
			first = false
		}
	}
	return mode
}

// Min returns the smallest value counted. The counter must not be empty.
func (fc *FrequencyCounter[K]) Min() K {
	entries := fc.ByValue()
	if len(entries) == 0 {
		panic("[FrequencyCounter] cannot get min, counter is empty")
	}
	return entries[0].Value
}

// Max returns the greatest value counted. The counter must not be empty.
func (fc *FrequencyCounter[K]) Max() K {
	entries := fc.ByValue()
	if len(entries) == 0 {
		panic("[FrequencyCounter] cannot get max, counter is empty")
	}
	return entries[len(entries)-1].Value
}

// ByCount returns every value ordered by count descending, ties by value ascending
func (fc *FrequencyCounter[K]) ByCount() []Entry[K] {
	entries := fc.entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})
	return entries
}

// ByValue returns every value in ascending order
func (fc *FrequencyCounter[K]) ByValue() []Entry[K] {
	entries := fc.entries()
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Value < entries[j].Value
	})
	return entries
}

func (fc *FrequencyCounter[K]) entries() []Entry[K] {
	entries := make([]Entry[K], 0, len(fc.counts))
	for value, count := range fc.counts {
		entries = append(entries, Entry[K]{Value: value, Count: count})
	}
	return entries
}
