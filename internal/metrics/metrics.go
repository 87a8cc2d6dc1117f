// Package metrics provides Prometheus metrics for taxi park queries.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const queryLabel = "query"

// Recorder records query counts, durations and failures.
type Recorder struct {
	namespace        string
	histogramBuckets []float64
	registerer       prometheus.Registerer

	queries       *prometheus.CounterVec
	queryErrors   *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
	parkTrips     prometheus.Gauge
}

// New creates a Recorder. Without WithRegisterer the collectors go to a fresh
// registry, so several recorders can live in one process. Recorders sharing a
// registerer share the collectors already registered on it.
func New(opts ...Option) (*Recorder, error) {
	r := &Recorder{
		namespace:        "taxipark",
		histogramBuckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registerer == nil {
		r.registerer = prometheus.NewRegistry()
	}

	var err error
	if r.queries, err = register(r.registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "queries_total",
		Help:      "Total number of queries run against a park",
	}, []string{queryLabel})); err != nil {
		return nil, err
	}

	if r.queryErrors, err = register(r.registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "query_errors_total",
		Help:      "Total number of queries rejected for invalid arguments",
	}, []string{queryLabel})); err != nil {
		return nil, err
	}

	if r.queryDuration, err = register(r.registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "query_duration_seconds",
		Help:      "Query duration in seconds",
		Buckets:   r.histogramBuckets,
	}, []string{queryLabel})); err != nil {
		return nil, err
	}

	if r.parkTrips, err = register(r.registerer, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      "park_trips",
		Help:      "Number of trips in the last queried park",
	})); err != nil {
		return nil, err
	}

	return r, nil
}

// register registers c, or returns the equal collector registered before it.
func register[C prometheus.Collector](registerer prometheus.Registerer, c C) (C, error) {
	err := registerer.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, fmt.Errorf("%w: %w", ErrRegisterFailed, err)
}

// ObserveQuery records one finished query.
func (r *Recorder) ObserveQuery(query string, trips int, took time.Duration, err error) {
	r.queries.WithLabelValues(query).Inc()
	r.queryDuration.WithLabelValues(query).Observe(took.Seconds())
	r.parkTrips.Set(float64(trips))
	if err != nil {
		r.queryErrors.WithLabelValues(query).Inc()
	}
}

// Queries returns the query counter, mostly for tests and exporters.
func (r *Recorder) Queries() *prometheus.CounterVec { return r.queries }

// QueryErrors returns the query error counter.
func (r *Recorder) QueryErrors() *prometheus.CounterVec { return r.queryErrors }

// ParkTrips returns the park size gauge.
func (r *Recorder) ParkTrips() prometheus.Gauge { return r.parkTrips }
