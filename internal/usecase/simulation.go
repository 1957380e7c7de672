package usecase

import (
	"context"
	"fmt"
	"time"

	"StackSim/internal/domain/models"
	domrepo "StackSim/internal/domain/repository"
	applogger "StackSim/pkg/logger"
	"StackSim/pkg/util"
)

// Simulation orchestrates one DCA comparison run: fetch prices for the
// historical window, build the purchase schedule over the full span, replay
// it, and value the result under both tax scenarios.
type Simulation struct {
	source    domrepo.PriceSource
	publisher domrepo.ReportPublisher
	metrics   domrepo.Metrics
	logger    *applogger.Logger

	symbol  string
	taxRate float64
}

func NewSimulation(
	source domrepo.PriceSource,
	publisher domrepo.ReportPublisher,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
	symbol string,
	taxRate float64,
) *Simulation {
	return &Simulation{
		source:    source,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		symbol:    symbol,
		taxRate:   taxRate,
	}
}

// RunParams are the validated inputs of one simulation run.
type RunParams struct {
	Start       time.Time
	End         time.Time
	FutureDate  time.Time
	Amount      float64
	Frequency   domrepo.Frequency
	CadenceDay  int
	FuturePrice float64
}

func (p RunParams) validate() error {
	if !p.Start.Before(p.End) {
		return fmt.Errorf("start_date must be before end_date")
	}
	if !p.FutureDate.After(p.End) {
		return fmt.Errorf("future_date must be after end_date")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if p.FuturePrice <= 0 {
		return fmt.Errorf("future_price must be positive")
	}
	if !domrepo.IsValidFrequency(p.Frequency) {
		return fmt.Errorf("unsupported frequency %q", p.Frequency)
	}
	return nil
}

// Run executes one simulation. A failed or empty price fetch is not an
// error: it degrades to a zero-valued result and the caller decides what
// that means (the report's ScheduledBuys distinguishes "no data" from "no
// schedule").
func (s *Simulation) Run(ctx context.Context, p RunParams) (*models.ComparisonReport, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	start, end, future := util.Day(p.Start), util.Day(p.End), util.Day(p.FutureDate)

	fetchStart := time.Now()
	series, err := s.source.FetchDailyCloses(ctx, s.symbol, start, end)
	s.metrics.RecordLatency("fetch", time.Since(fetchStart).Seconds())
	if err != nil {
		s.logger.Warn("price fetch failed, continuing with empty series",
			applogger.String("symbol", s.symbol), applogger.Error(err))
		s.metrics.RecordError("fetch")
		series = models.PriceSeries{}
	}
	s.metrics.RecordSeriesDays(s.symbol, series.Len())

	// The schedule spans the whole horizon; buys past the last known close
	// resolve to it through the nearest-prior rule.
	schedule := Schedule(start, future, p.Frequency, p.CadenceDay)
	result := Simulate(schedule, series, p.Amount)

	years := util.YearsBetween(start, future)
	taxed, untaxed := Evaluate(result, p.FuturePrice, s.taxRate, years)

	report := &models.ComparisonReport{
		Symbol:        s.symbol,
		Frequency:     string(p.Frequency),
		StartDate:     start,
		EndDate:       end,
		FutureDate:    future,
		FuturePrice:   p.FuturePrice,
		TaxRate:       s.taxRate,
		Years:         years,
		ScheduledBuys: len(schedule),
		Result:        result,
		Taxed:         taxed,
		Untaxed:       untaxed,
		Advantage:     untaxed.NetValue - taxed.NetValue,
	}

	s.metrics.RecordSimulation(string(p.Frequency), len(result.Purchases))

	if s.publisher != nil {
		if err := s.publisher.PublishReport(ctx, report); err != nil {
			s.logger.Warn("report publish failed", applogger.Error(err))
			s.metrics.RecordError("publish")
		}
	}

	return report, nil
}
