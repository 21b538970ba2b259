package trip

// Filters the criteria that produced a FilteredSet. Empty names mean no restriction.
type Filters struct {
	Month      string `json:"month,omitempty"`
	Day        string `json:"day,omitempty"`
	MonthIndex int    `json:"-"`
	DayIndex   int    `json:"-"`
}

func (f Filters) HasMonth() bool {
	return f.Month != ""
}

func (f Filters) HasDay() bool {
	return f.Day != ""
}

// FilteredSet read-only view of the records of a Dataset that passed some Filters. The view keeps the
// positions of the selected records, in dataset order, and never hands out references to them.
type FilteredSet struct {
	dataset *Dataset
	filters Filters
	indexes []int
}

// NewFilteredSet returns a view of dataset restricted to indexes. Indexes must be increasing.
func NewFilteredSet(dataset *Dataset, filters Filters, indexes []int) *FilteredSet {
	return &FilteredSet{
		dataset: dataset,
		filters: filters,
		indexes: indexes,
	}
}

func (fs *FilteredSet) City() string {
	return fs.dataset.City
}

func (fs *FilteredSet) Schema() Schema {
	return fs.dataset.Schema
}

func (fs *FilteredSet) Filters() Filters {
	return fs.filters
}

func (fs *FilteredSet) Len() int {
	return len(fs.indexes)
}

// IsEmpty returns true when the filters excluded every record. Statistics must not be computed over an empty set.
func (fs *FilteredSet) IsEmpty() bool {
	return len(fs.indexes) == 0
}

// At returns a copy of the i-th record of the view
func (fs *FilteredSet) At(i int) TripData {
	return fs.dataset.Records[fs.indexes[i]]
}

// Each calls fn with a copy of every record of the view, in order
func (fs *FilteredSet) Each(fn func(record TripData)) {
	for _, idx := range fs.indexes {
		fn(fs.dataset.Records[idx])
	}
}

// Records returns a copy of the records of the view
func (fs *FilteredSet) Records() []TripData {
	records := make([]TripData, 0, len(fs.indexes))
	fs.Each(func(record TripData) {
		records = append(records, record)
	})
	return records
}

// Page returns up to size records starting at offset. An offset past the end returns an empty page.
func (fs *FilteredSet) Page(offset int, size int) []TripData {
	if offset < 0 || size <= 0 || offset >= len(fs.indexes) {
		return []TripData{}
	}

	end := offset + size
	if end > len(fs.indexes) {
		end = len(fs.indexes)
	}

	page := make([]TripData, 0, end-offset)
	for _, idx := range fs.indexes[offset:end] {
		page = append(page, fs.dataset.Records[idx])
	}
	return page
}
