package presentation

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/business/queryresponse"
)

const (
	chartWidth = 40
	barChar    = "#"
)

// PrintMonthChart draws a horizontal bar per month. The longest bar belongs to the month with most rides.
func (p *Printer) PrintMonthChart(series []queryresponse.MonthCount) {
	if len(series) == 0 {
		fmt.Fprintln(p.out, "\nThere are no rides to chart.")
		return
	}

	maxCount := 0
	for _, month := range series {
		if month.Count > maxCount {
			maxCount = month.Count
		}
	}

	fmt.Fprint(p.out, "\nRiders per month\n\n")
	writer := tabwriter.NewWriter(p.out, 0, 0, 1, ' ', 0)
	for _, month := range series {
		fmt.Fprintf(writer, "%s\t|%s %v\n", month.Name, bar(month.Count, maxCount), month.Count)
	}
	_ = writer.Flush()
	fmt.Fprintln(p.out, separator)
}

// bar length is proportional to count. Months with rides always get at least one mark
func bar(count int, maxCount int) string {
	if count <= 0 || maxCount <= 0 {
		return ""
	}
	length := count * chartWidth / maxCount
	if length == 0 {
		length = 1
	}
	return strings.Repeat(barChar, length)
}
