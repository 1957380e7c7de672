//go:build wireinject
// +build wireinject

package di

import (
	"StackSim/pkg/config"
	"StackSim/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Logging and metrics
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCache,
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvidePriceArchive,
		ProvideReportPublisher,
		ProvideYahooClient,
		ProvidePriceSource,

		// Use cases
		ProvideSimulation,

		// HTTP surface
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
