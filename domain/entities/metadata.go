package entities

import "time"

// Metadata this struct contains extra information about the data that leaves the process
// + PassID: ID of the analysis pass that produced the data
// + City: city which belongs the data
// + Type: this field helps the consumer to recognize what type of data is
// + Month: month filter of the pass, empty if none
// + Day: day filter of the pass, empty if none
// + GeneratedAt: moment in which the data was produced
type Metadata struct {
	PassID      string    `json:"pass_id"`
	City        string    `json:"city"`
	Type        string    `json:"type"`
	Month       string    `json:"month,omitempty"`
	Day         string    `json:"day,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

func NewMetadata(passID string, city string, dataType string, month string, day string) Metadata {
	return Metadata{
		PassID:      passID,
		City:        city,
		Type:        dataType,
		Month:       month,
		Day:         day,
		GeneratedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}
