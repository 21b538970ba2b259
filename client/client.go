package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/analysis"
	"bikeshare/domain/entities/calendar"
	"bikeshare/presentation"
	"bikeshare/utils"
)

const (
	yesAnswer = "yes"
	allAnswer = "all"
)

// Analyzer runs a pass for the choices of the user
type Analyzer interface {
	Run(ctx context.Context, request analysis.Request) (*analysis.Report, error)
}

type ClientConfig struct {
	Cities   []string
	PageSize int
}

// Client asks the user what to analyze, shows the results and repeats until the user is done
type Client struct {
	config   ClientConfig
	input    *bufio.Scanner
	out      io.Writer
	printer  *presentation.Printer
	analyzer Analyzer
}

func NewClient(clientConfig ClientConfig, in io.Reader, out io.Writer, analyzer Analyzer) *Client {
	return &Client{
		config:   clientConfig,
		input:    bufio.NewScanner(in),
		out:      out,
		printer:  presentation.NewPrinter(out),
		analyzer: analyzer,
	}
}

// Loop runs passes until the user declines to restart, the input ends or ctx is cancelled
func (c *Client) Loop(ctx context.Context) error {
	fmt.Fprintln(c.out, "Hello! Let's explore some US bikeshare data!")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.runPass(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		restart, err := c.askYesNo("\nWould you like to restart? Enter yes or no.")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

func (c *Client) runPass(ctx context.Context) error {
	request, err := c.GetFilters()
	if err != nil {
		return err
	}
	c.printer.PrintFilters(request)

	report, err := c.analyzer.Run(ctx, request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debugf("[method: runPass][status: ERROR] pass for %s failed: %s", request.City, err)
		fmt.Fprintf(c.out, "\nCould not analyze %s: %s\n", request.City, err)
		return nil
	}

	c.printer.PrintReport(report)
	if report.Empty {
		return nil
	}

	if request.Month == "" {
		showChart, err := c.askYesNo("\nWould you like to see a chart of riders per month? Enter yes or no.")
		if err != nil {
			return err
		}
		if showChart {
			c.printer.PrintMonthChart(report.Response.MonthlyRides)
		}
	}

	return c.showRawData(report)
}

// GetFilters asks for a city, a month and a day until valid answers are given
func (c *Client) GetFilters() (analysis.Request, error) {
	cities := c.config.Cities
	city, err := c.ask(
		fmt.Sprintf("\nWould you like to see data for %s?", joinChoices(cities)),
		func(answer string) (string, bool) {
			return answer, utils.ContainsString(answer, cities)
		},
	)
	if err != nil {
		return analysis.Request{}, err
	}

	month, err := c.ask(
		fmt.Sprintf("\nWhich month? %s, or all.", strings.Join(calendar.Months, ", ")),
		optionalChoice(calendar.IsMonth),
	)
	if err != nil {
		return analysis.Request{}, err
	}

	day, err := c.ask(
		fmt.Sprintf("\nWhich day? %s, or all.", strings.Join(calendar.Weekdays, ", ")),
		optionalChoice(calendar.IsWeekday),
	)
	if err != nil {
		return analysis.Request{}, err
	}

	return analysis.Request{City: city, Month: month, Day: day}, nil
}

// showRawData prints PageSize rows at a time while the user keeps answering yes
func (c *Client) showRawData(report *analysis.Report) error {
	set := report.Set
	pageSize := c.config.PageSize
	prompt := fmt.Sprintf("\nWould you like to see %v rows of raw data? Enter yes or no.", pageSize)

	for offset := 0; ; offset += pageSize {
		more, err := c.askYesNo(prompt)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		page := set.Page(offset, pageSize)
		if len(page) == 0 {
			fmt.Fprintln(c.out, "\nThere is no more raw data to display.")
			return nil
		}
		c.printer.PrintRows(page, set.Schema())
		prompt = "\nDo you wish to continue? Enter yes or no."
	}
}

// ask prints prompt until validate accepts the answer, which is compared in lowercase
func (c *Client) ask(prompt string, validate func(answer string) (string, bool)) (string, error) {
	for {
		fmt.Fprintln(c.out, prompt)
		answer, err := c.readLine()
		if err != nil {
			return "", err
		}

		value, ok := validate(answer)
		if ok {
			return value, nil
		}
		fmt.Fprintf(c.out, "%q is not a valid option, please try again.\n", answer)
	}
}

func (c *Client) askYesNo(prompt string) (bool, error) {
	fmt.Fprintln(c.out, prompt)
	answer, err := c.readLine()
	if err != nil {
		return false, err
	}
	return answer == yesAnswer, nil
}

func (c *Client) readLine() (string, error) {
	if !c.input.Scan() {
		if err := c.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(c.input.Text())), nil
}

// optionalChoice accepts a blank answer or "all" as no filter
func optionalChoice(isValid func(string) bool) func(string) (string, bool) {
	return func(answer string) (string, bool) {
		if answer == "" || answer == allAnswer {
			return "", true
		}
		return answer, isValid(answer)
	}
}

func joinChoices(choices []string) string {
	if len(choices) <= 1 {
		return strings.Join(choices, "")
	}
	return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
}
