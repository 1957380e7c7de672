package repository

import (
	"context"
	"time"

	"StackSim/internal/domain/models"
)

// PriceSource fetches daily closing prices for a symbol over a date window.
// Implementations return an error on transport or decode failure; the caller
// degrades to an empty series, never the other way around.
type PriceSource interface {
	FetchDailyCloses(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error)
}

// PriceArchive persists fetched daily closes as a write-through backup and a
// fallback when the upstream source is unavailable.
type PriceArchive interface {
	SaveCloses(ctx context.Context, symbol string, points []models.PricePoint) error
	LoadCloses(ctx context.Context, symbol string, from, to time.Time) ([]models.PricePoint, error)
	Health(ctx context.Context) error
	Close() error
}

// ReportPublisher emits completed simulation reports for downstream
// consumers. Publishing is best-effort and never affects the run's output.
type ReportPublisher interface {
	PublishReport(ctx context.Context, report *models.ComparisonReport) error
	Close() error
}

// Metrics records operational measurements.
type Metrics interface {
	RecordSimulation(frequency string, purchases int)
	RecordError(kind string)
	RecordSeriesDays(symbol string, days int)
	RecordLatency(op string, seconds float64)
}
