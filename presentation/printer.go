package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"bikeshare/analysis"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities/calendar"
	"bikeshare/queryhandlers/factory"
)

const (
	separator   = "----------------------------------------"
	allFilter   = "all"
	ridesSuffix = "rides"
)

// Printer writes the results of a pass in a human readable way. It only reads the values it receives.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintFilters shows the choices of the user
func (p *Printer) PrintFilters(request analysis.Request) {
	month, day := request.Month, request.Day
	if month == "" {
		month = allFilter
	}
	if day == "" {
		day = allFilter
	}
	fmt.Fprintf(p.out, "\nCity: %s | Month: %s | Day: %s\n%s\n", request.City, month, day, separator)
}

// PrintReport prints each group of stats followed by the time it took to compute it
func (p *Printer) PrintReport(report *analysis.Report) {
	if report.Empty {
		fmt.Fprintf(p.out, "\nNo rides match the selected filters.\n%s\n", separator)
		return
	}

	response := report.Response
	fmt.Fprintf(p.out, "\n%v rides loaded and filtered in %s seconds.\n", response.RecordCount, seconds(report.LoadDuration))

	for _, timing := range report.Timings {
		switch timing.HandlerType {
		case factory.TimeHandlerType:
			p.printTimeStats(response.Time)
		case factory.StationHandlerType:
			p.printStationStats(response.Stations)
		case factory.DurationHandlerType:
			p.printDurationStats(response.Duration)
		case factory.UserHandlerType:
			p.printUserStats(response.Users, response.GetMetadata().GetCity())
		default:
			continue
		}
		fmt.Fprintf(p.out, "\nThis took %s seconds.\n%s\n", seconds(timing.Duration), separator)
	}
}

func (p *Printer) printTimeStats(stats *queryresponse.TimeStats) {
	if stats == nil {
		return
	}
	fmt.Fprint(p.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if stats.MostCommonMonth != nil {
		name, ok := calendar.MonthName(stats.MostCommonMonth.Value)
		if !ok {
			name = fmt.Sprintf("month %v", stats.MostCommonMonth.Value)
		}
		fmt.Fprintf(p.out, "Most common month: %s (%v %s)\n", name, stats.MostCommonMonth.Count, ridesSuffix)
	}
	if stats.MostCommonDay != nil {
		name, _ := calendar.WeekdayName(stats.MostCommonDay.Value)
		fmt.Fprintf(p.out, "Most common day of week: %s (%v %s)\n", name, stats.MostCommonDay.Count, ridesSuffix)
	}
	fmt.Fprintf(p.out, "Most common start hour: %v (%v %s)\n", stats.MostCommonHour.Value, stats.MostCommonHour.Count, ridesSuffix)
}

func (p *Printer) printStationStats(stats *queryresponse.StationStats) {
	if stats == nil {
		return
	}
	fmt.Fprint(p.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	fmt.Fprintf(p.out, "Most commonly used start station: %s (%v %s)\n", stats.TopStartStation.Value, stats.TopStartStation.Count, ridesSuffix)
	fmt.Fprintf(p.out, "Most commonly used end station: %s (%v %s)\n", stats.TopEndStation.Value, stats.TopEndStation.Count, ridesSuffix)
	fmt.Fprintf(p.out, "Most frequent trip: %s -> %s (%v %s)\n", stats.TopTrip.Start, stats.TopTrip.End, stats.TopTrip.Count, ridesSuffix)
}

func (p *Printer) printDurationStats(stats *queryresponse.DurationStats) {
	if stats == nil {
		return
	}
	fmt.Fprint(p.out, "\nCalculating Trip Duration...\n\n")
	fmt.Fprintf(p.out, "Total travel time: %s seconds (%s)\n", number(stats.Total), humanDuration(stats.Total))
	fmt.Fprintf(p.out, "Mean travel time: %s seconds (%s)\n", number(stats.Mean), humanDuration(stats.Mean))
}

func (p *Printer) printUserStats(stats *queryresponse.UserStats, city string) {
	if stats == nil {
		return
	}
	fmt.Fprint(p.out, "\nCalculating User Stats...\n\n")

	fmt.Fprintln(p.out, "Rides per user type:")
	p.printCounts(stats.UserTypes)

	if stats.Genders.Available {
		fmt.Fprintln(p.out, "\nRides per gender:")
		p.printCounts(stats.Genders.Counts)
	} else {
		fmt.Fprintf(p.out, "\nGender data is not available for %s.\n", city)
	}

	if stats.BirthYears.Available {
		fmt.Fprintf(p.out, "\nEarliest year of birth: %v\n", stats.BirthYears.Earliest)
		fmt.Fprintf(p.out, "Most recent year of birth: %v\n", stats.BirthYears.MostRecent)
		fmt.Fprintf(p.out, "Most common year of birth: %v (%v %s)\n", stats.BirthYears.MostCommon.Value, stats.BirthYears.MostCommon.Count, ridesSuffix)
	} else {
		fmt.Fprintf(p.out, "\nBirth year data is not available for %s.\n", city)
	}
}

func (p *Printer) printCounts(counts []queryresponse.ValueCount) {
	writer := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, count := range counts {
		fmt.Fprintf(writer, "  %s\t%v\n", count.Value, count.Count)
	}
	_ = writer.Flush()
}

func seconds(duration time.Duration) string {
	return strconv.FormatFloat(duration.Seconds(), 'f', 6, 64)
}

func number(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', 2, 64)
	return strings.TrimSuffix(formatted, ".00")
}

func humanDuration(secs float64) string {
	return time.Duration(secs * float64(time.Second)).Round(time.Second).String()
}
