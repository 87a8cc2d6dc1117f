package taxipark

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cubny/taxipark/internal/logging"
	"github.com/cubny/taxipark/internal/metrics"
)

// query names used as log attributes and metric labels
const (
	queryFakeDrivers        = "fake_drivers"
	queryFaithfulPassengers = "faithful_passengers"
	queryFrequentPassengers = "frequent_passengers"
	querySmartPassengers    = "smart_passengers"
	queryDurationPeriod     = "most_frequent_duration_period"
	queryPareto             = "pareto_principle"
)

// Analyzer runs the park queries with the thresholds of its Config,
// logging and measuring every call
type Analyzer struct {
	conf       *Config
	logger     *slog.Logger
	registerer prometheus.Registerer
	recorder   *metrics.Recorder
}

// AnalyzerOption configures an Analyzer
type AnalyzerOption func(*Analyzer)

// WithLogger replaces the default stderr logger
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRegisterer registers the query metrics on registerer instead of a private registry.
// Analyzers sharing a registerer share their collectors.
func WithRegisterer(registerer prometheus.Registerer) AnalyzerOption {
	return func(a *Analyzer) {
		a.registerer = registerer
	}
}

// Report gathers the results of all the queries over one park
type Report struct {
	ID                 string
	FakeDrivers        Set[Driver]
	FaithfulPassengers Set[Passenger]
	FrequentPassengers Set[Passenger]
	SmartPassengers    Set[Passenger]
	// Period is meaningful only when HasPeriod is true
	Period    Period
	HasPeriod bool
	Pareto    bool
}

// NewAnalyzer creates an Analyzer
func NewAnalyzer(conf *Config, opts ...AnalyzerOption) (*Analyzer, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{conf: conf}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		logger, err := logging.New(os.Stderr, conf.LogLevel)
		if err != nil {
			return nil, err
		}
		a.logger = logger
	}
	a.logger = a.logger.With(slog.String("component", "taxipark"))
	recorder, err := metrics.New(
		metrics.WithNamespace(conf.MetricsNamespace),
		metrics.WithRegisterer(a.registerer),
	)
	if err != nil {
		return nil, err
	}
	a.recorder = recorder

	return a, nil
}

// FakeDrivers is Park.FakeDrivers
func (a *Analyzer) FakeDrivers(ctx context.Context, p *Park) Set[Driver] {
	start := time.Now()
	fake := p.FakeDrivers()
	a.observe(ctx, queryFakeDrivers, p, start, fake.Len(), nil)
	return fake
}

// FaithfulPassengers is Park.FaithfulPassengers
func (a *Analyzer) FaithfulPassengers(ctx context.Context, p *Park, minTrips int) (Set[Passenger], error) {
	start := time.Now()
	faithful, err := p.FaithfulPassengers(minTrips)
	a.observe(ctx, queryFaithfulPassengers, p, start, faithful.Len(), err,
		slog.Int("min_trips", minTrips))
	return faithful, err
}

// FrequentPassengers is Park.FrequentPassengers
func (a *Analyzer) FrequentPassengers(ctx context.Context, p *Park, driver Driver) Set[Passenger] {
	start := time.Now()
	frequent := p.FrequentPassengers(driver)
	a.observe(ctx, queryFrequentPassengers, p, start, frequent.Len(), nil,
		slog.String("driver", string(driver)))
	return frequent
}

// SmartPassengers is Park.SmartPassengers
func (a *Analyzer) SmartPassengers(ctx context.Context, p *Park) Set[Passenger] {
	start := time.Now()
	smart := p.SmartPassengers()
	a.observe(ctx, querySmartPassengers, p, start, smart.Len(), nil)
	return smart
}

// MostFrequentTripDurationPeriod is Park.MostFrequentTripDurationPeriod using the configured period width
func (a *Analyzer) MostFrequentTripDurationPeriod(ctx context.Context, p *Park) (Period, bool) {
	start := time.Now()
	period, ok := mostFrequentPeriod(p.Trips, a.conf.PeriodWidth)
	if !ok {
		a.observe(ctx, queryDurationPeriod, p, start, 0, nil, slog.Int("width", a.conf.PeriodWidth))
		return period, false
	}
	a.observe(ctx, queryDurationPeriod, p, start, 1, nil,
		slog.Int("width", a.conf.PeriodWidth), slog.String("period", period.String()))
	return period, true
}

// CheckParetoPrinciple is Park.CheckParetoPrinciple using the configured shares
func (a *Analyzer) CheckParetoPrinciple(ctx context.Context, p *Park) bool {
	start := time.Now()
	holds := checkPareto(p, a.conf.ParetoDriverShare, a.conf.ParetoIncomeShare)
	a.observe(ctx, queryPareto, p, start, 1, nil, slog.Bool("holds", holds))
	return holds
}

// Report runs every query against the park. A negative minTrips fails the
// report without running the other queries.
func (a *Analyzer) Report(ctx context.Context, p *Park, driver Driver, minTrips int) (Report, error) {
	faithful, err := a.FaithfulPassengers(ctx, p, minTrips)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		ID:                 uuid.NewString(),
		FakeDrivers:        a.FakeDrivers(ctx, p),
		FaithfulPassengers: faithful,
		FrequentPassengers: a.FrequentPassengers(ctx, p, driver),
		SmartPassengers:    a.SmartPassengers(ctx, p),
		Pareto:             a.CheckParetoPrinciple(ctx, p),
	}
	r.Period, r.HasPeriod = a.MostFrequentTripDurationPeriod(ctx, p)

	a.logger.InfoContext(ctx, "park report ready",
		slog.String("report_id", r.ID),
		slog.Int("trips", len(p.Trips)),
		slog.Bool("pareto", r.Pareto))
	return r, nil
}

// observe logs and measures one finished query
func (a *Analyzer) observe(ctx context.Context, query string, p *Park, start time.Time, size int, err error, attrs ...slog.Attr) {
	took := time.Since(start)
	a.recorder.ObserveQuery(query, len(p.Trips), took, err)

	attrs = append(attrs,
		slog.String("query", query),
		slog.String("query_id", uuid.NewString()),
		slog.Int("trips", len(p.Trips)),
		slog.Duration("took", took),
	)
	if err != nil {
		a.logger.LogAttrs(ctx, slog.LevelWarn, "query rejected", append(attrs, tint.Err(err))...)
		return
	}
	a.logger.LogAttrs(ctx, slog.LevelDebug, "query done", append(attrs, slog.Int("result_size", size))...)
}
