package presentation

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"bikeshare/domain/entities/trip"
)

var rawDataHeader = []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}

// PrintRows prints rows as a table. Gender and birth year columns are shown only if the dataset has them
func (p *Printer) PrintRows(rows []trip.TripData, schema trip.Schema) {
	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	header := rawDataHeader
	if schema.HasGender {
		header = append(header[:len(header):len(header)], "Gender")
	}
	if schema.HasBirthYear {
		header = append(header[:len(header):len(header)], "Birth Year")
	}
	printLine(writer, header)

	for _, row := range rows {
		line := []string{
			row.ID,
			row.StartTime.Format("2006-01-02 15:04:05"),
			row.EndTime,
			strconv.FormatFloat(row.Duration, 'f', -1, 64),
			row.StartStation,
			row.EndStation,
			row.UserType,
		}
		if schema.HasGender {
			line = append(line, row.Gender)
		}
		if schema.HasBirthYear {
			birthYear := ""
			if row.HasBirthYear() {
				birthYear = strconv.Itoa(row.BirthYear)
			}
			line = append(line, birthYear)
		}
		printLine(writer, line)
	}
	_ = writer.Flush()
}

func printLine(writer *tabwriter.Writer, cells []string) {
	for idx, cell := range cells {
		if idx > 0 {
			fmt.Fprint(writer, "\t")
		}
		fmt.Fprint(writer, cell)
	}
	fmt.Fprintln(writer)
}
