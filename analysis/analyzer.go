package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
	"bikeshare/filter"
	"bikeshare/metrics"
	"bikeshare/queryhandlers/factory"
	"bikeshare/recordstore"
)

const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"

	reportType = "bikeshare-stats"
)

// Request the validated choices of the user for one pass. Month and Day are empty when not filtering.
type Request struct {
	City  string
	Month string
	Day   string
}

// StatTiming time spent by a handler
type StatTiming struct {
	HandlerType string
	Duration    time.Duration
}

// Report result of a pass.
// + Set: filtered rides, used by the raw data pager
// + Empty: true when no ride matched the filters. In that case no stat was computed
// + Response: stats of Set
// + LoadDuration, Timings: time spent loading the rides and computing each group of stats
type Report struct {
	PassID       string
	Set          *trip.FilteredSet
	Empty        bool
	Response     *queryresponse.QueryResponse
	LoadDuration time.Duration
	Timings      []StatTiming
}

// Reporter delivers the stats of a pass to a downstream consumer
type Reporter interface {
	Publish(ctx context.Context, response *queryresponse.QueryResponse) error
}

// Analyzer runs passes: load, filter and compute. Nothing is kept between passes.
type Analyzer struct {
	store    recordstore.Store
	handlers []factory.Handler
	recorder metrics.Recorder
	reporter Reporter
}

// NewAnalyzer returns an Analyzer with every query handler. Reporter may be nil
func NewAnalyzer(store recordstore.Store, recorder metrics.Recorder, reporter Reporter) *Analyzer {
	return &Analyzer{
		store:    store,
		handlers: factory.NewQueryHandlers(),
		recorder: recorder,
		reporter: reporter,
	}
}

func (a *Analyzer) getLogMessage(passID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[pass: %s][method: %s][status: ERROR] %s: %s", passID, method, message, err.Error())
	}
	return fmt.Sprintf("[pass: %s][method: %s][status: OK] %s", passID, method, message)
}

// Run loads the rides of request.City, filters them and computes every stat. Load errors end the pass.
func (a *Analyzer) Run(ctx context.Context, request Request) (*Report, error) {
	passID := uuid.NewString()
	city := recordstore.NormalizeCity(request.City)

	loadStart := time.Now()
	dataset, err := a.store.Load(ctx, city)
	loadDuration := time.Since(loadStart)
	if err != nil {
		a.recorder.RecordLoad(city, 0, loadDuration, err)
		a.recorder.RecordPass(city, OutcomeError)
		log.Error(a.getLogMessage(passID, "Run", "error loading "+city, err))
		return nil, err
	}
	a.recorder.RecordLoad(city, dataset.Len(), loadDuration, nil)
	log.Debug(a.getLogMessage(passID, "Run", fmt.Sprintf("%v rides of %s loaded in %s", dataset.Len(), city, loadDuration), nil))

	set := filter.Apply(dataset, request.Month, request.Day)
	filters := set.Filters()
	metadata := entities.NewMetadata(passID, dataset.City, reportType, filters.Month, filters.Day)

	report := &Report{
		PassID:       passID,
		Set:          set,
		Response:     queryresponse.NewQueryResponse(metadata, set.Len()),
		LoadDuration: loadDuration,
	}

	if set.IsEmpty() {
		report.Empty = true
		a.recorder.RecordPass(city, OutcomeEmpty)
		log.Info(a.getLogMessage(passID, "Run", "no rides match the filters", nil))
		return report, nil
	}

	for _, handler := range a.handlers {
		statStart := time.Now()
		err = handler.GenerateResponse(set, report.Response)
		elapsed := time.Since(statStart)
		if err != nil {
			a.recorder.RecordPass(city, OutcomeError)
			log.Error(a.getLogMessage(passID, "Run", "error generating "+handler.GetType()+" stats", err))
			return nil, fmt.Errorf("error generating %s stats: %w", handler.GetType(), err)
		}

		a.recorder.RecordStat(handler.GetType(), elapsed)
		report.Timings = append(report.Timings, StatTiming{HandlerType: handler.GetType(), Duration: elapsed})
	}

	if a.reporter != nil {
		if err = a.reporter.Publish(ctx, report.Response); err != nil {
			log.Warn(a.getLogMessage(passID, "Run", "report not delivered", err))
		}
	}

	a.recorder.RecordPass(city, OutcomeOK)
	log.Info(a.getLogMessage(passID, "Run", fmt.Sprintf("stats of %v rides of %s generated", set.Len(), city), nil))
	return report, nil
}
