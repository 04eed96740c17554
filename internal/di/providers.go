package di

import (
	"fmt"

	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/handler/ws"
	internalrepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/service/filedrop"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/usecase"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/config"
	xhttp "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/http"
	pkgkafka "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/kafka"
	applogger "github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/metrics"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideAccountRegistry creates the in-memory account store.
func ProvideAccountRegistry() drepo.AccountStore {
	return internalrepo.NewAccountRegistry()
}

// ProvideRelationshipTable creates the in-memory relationship store.
func ProvideRelationshipTable() drepo.RelationshipStore {
	return internalrepo.NewRelationshipTable()
}

// ProvideSlotStore opens the file-drop slot directory.
func ProvideSlotStore(cfg *config.Config) (*filedrop.SlotStore, error) {
	store, err := filedrop.NewSlotStore(cfg.FileDrop.Dir)
	if err != nil {
		return nil, fmt.Errorf("slot store: %w", err)
	}
	return store, nil
}

// ProvideCommandSlots exposes the slot store as the outbound slot contract.
func ProvideCommandSlots(store *filedrop.SlotStore) drepo.CommandSlots {
	return store
}

// ProvideJournal creates the Kafka copy journal, or nil when disabled.
func ProvideJournal(cfg *config.Config) (drepo.EventSink, error) {
	if !cfg.Journal.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Journal.Brokers),
		pkgkafka.WithCompression(cfg.Journal.Producer.Compression),
		pkgkafka.WithRequiredAcks(cfg.Journal.Producer.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Journal.Producer.MaxAttempts),
		pkgkafka.WithBatchTimeout(cfg.Journal.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Journal.Producer.WriteTimeout, cfg.Journal.Producer.ReadTimeout),
		pkgkafka.WithAsync(cfg.Journal.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("journal producer: %w", err)
	}
	return internalrepo.NewCopyJournal(producer, cfg.Journal.Topic), nil
}

// ProvideObserverHub creates the monitor broadcast hub.
func ProvideObserverHub(log *applogger.Logger, m drepo.Metrics) *usecase.ObserverHub {
	return usecase.NewObserverHub(log, m)
}

// ProvideDeliveryService creates the transport-agnostic delivery service.
func ProvideDeliveryService(slots drepo.CommandSlots, m drepo.Metrics) *usecase.DeliveryService {
	return usecase.NewDeliveryService(slots, m)
}

// ProvideRouter creates the fan-out engine.
func ProvideRouter(accounts drepo.AccountStore, rels drepo.RelationshipStore, delivery *usecase.DeliveryService, hub *usecase.ObserverHub, journal drepo.EventSink, m drepo.Metrics, log *applogger.Logger) *usecase.Router {
	return usecase.NewRouter(accounts, rels, delivery, hub, journal, m, log)
}

// ProvideBridge creates the message entry points.
func ProvideBridge(accounts drepo.AccountStore, rels drepo.RelationshipStore, router *usecase.Router, hub *usecase.ObserverHub, m drepo.Metrics, log *applogger.Logger) *usecase.Bridge {
	return usecase.NewBridge(accounts, rels, router, hub, m, log)
}

// ProvidePoller creates the file-drop poller.
func ProvidePoller(store *filedrop.SlotStore, bridge *usecase.Bridge, cfg *config.Config, m drepo.Metrics, log *applogger.Logger) *filedrop.Poller {
	return filedrop.NewPoller(store, bridge, cfg.FileDrop.PollInterval, cfg.FileDrop.ErrorBackoff, m, log)
}

// ProvideWSHandler creates the websocket endpoint handler.
func ProvideWSHandler(bridge *usecase.Bridge, log *applogger.Logger) *ws.Handler {
	return ws.NewHandler(bridge, log)
}

// ProvideHTTPServer creates the echo server hosting the endpoints.
func ProvideHTTPServer(cfg *config.Config, h *ws.Handler) *xhttp.Server {
	return xhttp.NewServer(h,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetrics(cfg.Metrics.Enabled),
	)
}

// ProvideApp assembles the application.
func ProvideApp(cfg *config.Config, log *applogger.Logger, srv *xhttp.Server, poller *filedrop.Poller, journal drepo.EventSink) *server.App {
	return server.New(cfg, log, srv, poller, journal)
}
