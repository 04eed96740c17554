package usecase

import (
	"context"
	"encoding/json"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/util"
)

// Router is the fan-out engine: it matches a provider signal against the
// relationship table, scales the volume per link and dispatches one
// delivery per connected copyer. The fan-out is best effort and has no
// transactional semantics; a partial fan-out is a terminal state, not an
// error.
type Router struct {
	accounts drepo.AccountStore
	rels     drepo.RelationshipStore
	delivery *DeliveryService
	hub      *ObserverHub
	journal  drepo.EventSink // optional, nil when journaling is disabled

	metrics drepo.Metrics
	log     *logger.Logger
}

// NewRouter creates the routing engine.
func NewRouter(accounts drepo.AccountStore, rels drepo.RelationshipStore, delivery *DeliveryService, hub *ObserverHub, journal drepo.EventSink, metrics drepo.Metrics, log *logger.Logger) *Router {
	return &Router{
		accounts: accounts,
		rels:     rels,
		delivery: delivery,
		hub:      hub,
		journal:  journal,
		metrics:  metrics,
		log:      log,
	}
}

// Route copies one provider signal to every connected copyer with an active
// relationship, in table order. Offline or unknown copyers are skipped
// silently; delivery failures are logged and do not stop the remaining
// targets. One trade_copied event goes out per successful dispatch attempt.
func (r *Router) Route(ctx context.Context, providerID string, sig models.TradeSignal) {
	r.log.Info("trade signal",
		logger.String("provider", providerID),
		logger.String("symbol", sig.Symbol),
		logger.String("action", string(sig.Action)),
		logger.Float64("volume", sig.Volume),
	)
	r.metrics.RecordSignalRouted(providerID, sig.Symbol)

	for _, rel := range r.rels.ActiveForProvider(providerID) {
		copyer, ok := r.accounts.Get(rel.CopyerID)
		if !ok || !copyer.Connected {
			// No queueing for offline copyers.
			continue
		}

		// Fresh value per target: scaled volume, provenance comment, and a
		// timestamp marking the copy decision rather than the origin.
		adjusted := sig
		adjusted.Volume = sig.Volume * rel.VolumeMultiplier
		adjusted.Comment = "Copy from " + providerID
		adjusted.Timestamp = util.NowTimestamp()

		payload, err := json.Marshal(models.NewExecuteTrade(adjusted))
		if err != nil {
			r.log.Error("encode execute_trade", logger.String("copyer", rel.CopyerID), logger.Error(err))
			r.metrics.RecordError("encode")
			continue
		}

		if err := r.delivery.Deliver(ctx, copyer, payload); err != nil {
			r.log.Error("delivery failed",
				logger.String("provider", providerID),
				logger.String("copyer", rel.CopyerID),
				logger.Error(err),
			)
			r.metrics.RecordError("delivery")
			continue
		}

		r.log.Info("trade copied",
			logger.String("from", providerID),
			logger.String("to", rel.CopyerID),
			logger.Float64("volume", adjusted.Volume),
		)

		event := models.TradeCopiedEvent{
			Type:  models.TypeTradeCopied,
			From:  providerID,
			To:    rel.CopyerID,
			Trade: adjusted,
		}
		r.hub.Notify(ctx, models.TypeTradeCopied, event)

		if r.journal != nil {
			if err := r.journal.Publish(ctx, providerID, event); err != nil {
				r.log.Warn("journal publish failed", logger.Error(err))
				r.metrics.RecordError("journal")
			}
		}
	}
}
