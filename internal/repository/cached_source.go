package repository

import (
	"context"
	"fmt"
	"time"

	"StackSim/internal/domain/models"
	domrepo "StackSim/internal/domain/repository"
	"StackSim/pkg/cache"
	applogger "StackSim/pkg/logger"
	"StackSim/pkg/util"
)

// CachedPriceSource decorates a PriceSource with a series cache memoized by
// (symbol, from, to) and an optional persistent archive. Successful fetches
// write through to both; when the upstream fails the archive is the
// fallback before giving up with an empty series.
type CachedPriceSource struct {
	inner   domrepo.PriceSource
	cache   cache.Service
	archive domrepo.PriceArchive // may be nil
	ttl     time.Duration
	logger  *applogger.Logger
}

func NewCachedPriceSource(
	inner domrepo.PriceSource,
	cacheSvc cache.Service,
	archive domrepo.PriceArchive,
	ttl time.Duration,
	logger *applogger.Logger,
) *CachedPriceSource {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedPriceSource{
		inner:   inner,
		cache:   cacheSvc,
		archive: archive,
		ttl:     ttl,
		logger:  logger,
	}
}

func (s *CachedPriceSource) FetchDailyCloses(ctx context.Context, symbol string, from, to time.Time) (models.PriceSeries, error) {
	key := seriesKey(symbol, from, to)

	var cached []models.PricePoint
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		s.logger.Debug("price series cache hit", applogger.String("key", key))
		return models.NewPriceSeries(cached), nil
	}

	series, err := s.inner.FetchDailyCloses(ctx, symbol, from, to)
	if err == nil && !series.Empty() {
		points := series.Points()
		if cerr := s.cache.Set(ctx, key, points, s.ttl); cerr != nil {
			s.logger.Warn("price series cache set failed", applogger.Error(cerr))
		}
		if s.archive != nil {
			if aerr := s.archive.SaveCloses(ctx, symbol, points); aerr != nil {
				s.logger.Warn("price archive save failed", applogger.Error(aerr))
			}
		}
		return series, nil
	}

	if s.archive != nil {
		points, aerr := s.archive.LoadCloses(ctx, symbol, from, to)
		if aerr == nil && len(points) > 0 {
			s.logger.Info("serving price series from archive",
				applogger.String("symbol", symbol), applogger.Int("days", len(points)))
			return models.NewPriceSeries(points), nil
		}
	}

	if err != nil {
		return models.PriceSeries{}, err
	}
	return series, nil
}

func seriesKey(symbol string, from, to time.Time) string {
	return fmt.Sprintf("series:%s:%s:%s", symbol, util.FormatDate(from), util.FormatDate(to))
}
