package di

import (
	"context"
	"fmt"
	"time"

	domrepo "StackSim/internal/domain/repository"
	"StackSim/internal/handler/api"
	internalrepo "StackSim/internal/repository"
	"StackSim/internal/service/yahoo"
	"StackSim/internal/usecase"
	"StackSim/pkg/cache"
	pkgch "StackSim/pkg/clickhouse"
	"StackSim/pkg/config"
	xhttp "StackSim/pkg/http"
	pkgkafka "StackSim/pkg/kafka"
	applogger "StackSim/pkg/logger"
	"StackSim/pkg/metrics"
	"StackSim/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideCache builds the price-series cache. A layered memory+Redis
// cache when Redis is enabled, in-process memory cache otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	return cache.NewLayeredCache(redisCache), nil
}

// ProvideClickHouseClient creates a ClickHouse client and initializes
// the daily-closes schema. Returns nil when the archive is disabled.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.Archive.Host),
		pkgch.WithPort(cfg.Archive.Port),
		pkgch.WithDatabase(cfg.Archive.Database),
		pkgch.WithCredentials(cfg.Archive.User, cfg.Archive.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.Archive.UseHTTP),
		pkgch.WithTimeouts(cfg.Archive.DialTimeout, cfg.Archive.ReadTimeout, cfg.Archive.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.Archive.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := cfg.Archive.Database
	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS " + db,
		"CREATE TABLE IF NOT EXISTS " + db + ".daily_closes (symbol String, day Date, close Float64) ENGINE=ReplacingMergeTree ORDER BY (symbol, day)",
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvidePriceArchive creates the ClickHouse archive repository.
// Returns nil when the archive is disabled.
func ProvidePriceArchive(chClient *pkgch.Client, cfg *config.Config) domrepo.PriceArchive {
	if chClient == nil {
		return nil
	}
	return internalrepo.NewClickHousePriceArchive(chClient.DB(), cfg.Archive.Database+".daily_closes")
}

// ProvideKafkaProducer creates a Kafka producer. Returns nil when no
// brokers are configured.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if len(cfg.Events.Brokers) == 0 {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithTimeouts(cfg.Events.WriteTimeout, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideReportPublisher creates the Kafka report publisher.
// Returns nil when event publishing is disabled.
func ProvideReportPublisher(producer *pkgkafka.Producer, cfg *config.Config) domrepo.ReportPublisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaReportPublisher(producer, cfg.Events.Topic)
}

// ProvideYahooClient creates the Yahoo Finance chart client.
func ProvideYahooClient(cfg *config.Config) *yahoo.Client {
	return yahoo.New(cfg.Provider.BaseURL, cfg.Provider.UserAgent, cfg.Provider.Timeout)
}

// ProvidePriceSource wraps the provider client with caching and
// archive fallback.
func ProvidePriceSource(
	client *yahoo.Client,
	cacheSvc cache.Service,
	archive domrepo.PriceArchive,
	logger *applogger.Logger,
	cfg *config.Config,
) domrepo.PriceSource {
	return internalrepo.NewCachedPriceSource(client, cacheSvc, archive, cfg.Provider.SeriesTTL, logger)
}

// ProvideSimulation creates the simulation use case.
func ProvideSimulation(
	source domrepo.PriceSource,
	publisher domrepo.ReportPublisher,
	m domrepo.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.Simulation {
	return usecase.NewSimulation(source, publisher, m, logger, cfg.Simulation.Symbol, cfg.Simulation.TaxRate)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	logger *applogger.Logger,
	sim *usecase.Simulation,
	archive domrepo.PriceArchive,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewSimulateHandler(logger, sim, archive, cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	cacheSvc cache.Service,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
) *server.App {
	return server.New(cfg, logger, handler, cacheSvc, chClient, producer)
}
