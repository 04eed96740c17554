//go:build wireinject
// +build wireinject

package di

import (
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/config"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// State
		ProvideAccountRegistry,
		ProvideRelationshipTable,

		// Transports
		ProvideSlotStore,
		ProvideCommandSlots,
		ProvideJournal,

		// Core
		ProvideObserverHub,
		ProvideDeliveryService,
		ProvideRouter,
		ProvideBridge,
		ProvidePoller,

		// Server
		ProvideWSHandler,
		ProvideHTTPServer,
		ProvideApp,
	)
	return &server.App{}, nil
}
