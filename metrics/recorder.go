package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder receives the measurements of each analysis pass
type Recorder interface {
	RecordLoad(city string, records int, duration time.Duration, err error)
	RecordStat(handlerType string, duration time.Duration)
	RecordPass(city string, outcome string)
}

// PrometheusRecorder keeps the measurements in its own registry, served by Server
type PrometheusRecorder struct {
	registry *prometheus.Registry

	loadDurationSeconds *prometheus.HistogramVec
	recordsLoaded       *prometheus.CounterVec
	statDurationSeconds *prometheus.HistogramVec
	passCounter         *prometheus.CounterVec
}

func NewPrometheusRecorder() *PrometheusRecorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &PrometheusRecorder{
		registry: registry,
		loadDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bikeshare_load_duration_seconds",
			Help:    "Time spent loading the rides of a city.",
			Buckets: prometheus.DefBuckets,
		}, []string{"city", "status"}),
		recordsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeshare_records_loaded_total",
			Help: "Total rides loaded by city.",
		}, []string{"city"}),
		statDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bikeshare_stat_duration_seconds",
			Help:    "Time spent computing each group of statistics.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
		passCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeshare_passes_total",
			Help: "Total analysis passes by city and outcome.",
		}, []string{"city", "outcome"}),
	}

	registry.MustRegister(r.loadDurationSeconds)
	registry.MustRegister(r.recordsLoaded)
	registry.MustRegister(r.statDurationSeconds)
	registry.MustRegister(r.passCounter)

	return r
}

func (r *PrometheusRecorder) GetRegistry() *prometheus.Registry {
	return r.registry
}

func (r *PrometheusRecorder) RecordLoad(city string, records int, duration time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.loadDurationSeconds.WithLabelValues(city, status).Observe(duration.Seconds())
	if err == nil {
		r.recordsLoaded.WithLabelValues(city).Add(float64(records))
	}
}

func (r *PrometheusRecorder) RecordStat(handlerType string, duration time.Duration) {
	r.statDurationSeconds.WithLabelValues(handlerType).Observe(duration.Seconds())
}

// RecordPass counts a finished pass. Outcome is one of the analysis outcomes: ok, empty or error
func (r *PrometheusRecorder) RecordPass(city string, outcome string) {
	r.passCounter.WithLabelValues(city, outcome).Inc()
}
