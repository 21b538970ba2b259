package rowparser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bikeshare/config"
	"bikeshare/domain/entities/trip"
	"bikeshare/recordstore"
)

const noColumn = -1

// RowParser turns the rows of a dataset into rides. The position of each field is taken from the header, so
// the columns may come in any order; optional columns may be missing.
type RowParser struct {
	layouts      []string
	id           int
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// NewRowParser maps each configured column to its position in header. If one of the required columns is
// missing ErrMalformedData is returned. When no id column is configured a blank first header is used as the
// row label, as pandas exports leave it.
func NewRowParser(header []string, columns config.ColumnsConfig, layouts []string) (*RowParser, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, ok := positions[name]; !ok {
			positions[name] = idx
		}
	}

	find := func(name string) int {
		if name == "" {
			return noColumn
		}
		if idx, ok := positions[name]; ok {
			return idx
		}
		return noColumn
	}

	parser := &RowParser{
		layouts:      layouts,
		id:           find(columns.ID),
		startTime:    find(columns.StartTime),
		endTime:      find(columns.EndTime),
		duration:     find(columns.Duration),
		startStation: find(columns.StartStation),
		endStation:   find(columns.EndStation),
		userType:     find(columns.UserType),
		gender:       find(columns.Gender),
		birthYear:    find(columns.BirthYear),
	}

	if columns.ID == "" {
		if idx, ok := positions[""]; ok && idx == 0 {
			parser.id = 0
		}
	}

	required := []struct {
		name string
		idx  int
	}{
		{columns.StartTime, parser.startTime},
		{columns.Duration, parser.duration},
		{columns.StartStation, parser.startStation},
		{columns.EndStation, parser.endStation},
		{columns.UserType, parser.userType},
	}
	var missing []string
	for _, column := range required {
		if column.idx == noColumn {
			missing = append(missing, column.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns %v", recordstore.ErrMalformedData, missing)
	}

	return parser, nil
}

// Schema returns which optional columns are present
func (rp *RowParser) Schema() trip.Schema {
	return trip.Schema{
		HasGender:    rp.gender != noColumn,
		HasBirthYear: rp.birthYear != noColumn,
	}
}

// Parse returns the ride of row. Ordinal is the 0-based position of the row in the dataset; it is the ride ID
// when the dataset has no row labels.
func (rp *RowParser) Parse(row []string, ordinal int) (trip.TripData, error) {
	rawStart := cell(row, rp.startTime)
	startTime, err := rp.parseTime(rawStart)
	if err != nil {
		return trip.TripData{}, fmt.Errorf("%w: row %v: invalid start time %q", recordstore.ErrMalformedData, ordinal, rawStart)
	}

	rawDuration := cell(row, rp.duration)
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return trip.TripData{}, fmt.Errorf("%w: row %v: invalid trip duration %q", recordstore.ErrMalformedData, ordinal, rawDuration)
	}

	id := cell(row, rp.id)
	if id == "" {
		id = strconv.Itoa(ordinal)
	}

	tripData := trip.NewTripData(
		id,
		startTime,
		cell(row, rp.endTime),
		duration,
		cell(row, rp.startStation),
		cell(row, rp.endStation),
		cell(row, rp.userType),
	)
	tripData.Gender = cell(row, rp.gender)

	rawBirthYear := cell(row, rp.birthYear)
	if rawBirthYear != "" {
		birthYear, err := strconv.ParseFloat(rawBirthYear, 64)
		if err != nil || birthYear != math.Trunc(birthYear) {
			return trip.TripData{}, fmt.Errorf("%w: row %v: invalid birth year %q", recordstore.ErrMalformedData, ordinal, rawBirthYear)
		}
		tripData.BirthYear = int(birthYear)
	}

	return tripData, nil
}

func (rp *RowParser) parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	err := fmt.Errorf("no time layout configured")
	for _, layout := range rp.layouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// cell returns the trimmed value at idx. Rows may be shorter than the header, missing cells are blank.
func cell(row []string, idx int) string {
	if idx == noColumn || idx >= len(row) {
		return ""
	}
	value := strings.TrimSpace(row[idx])
	if strings.EqualFold(value, "nan") {
		return ""
	}
	return value
}
