package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
	"github.com/bl00dycrusher/trade-nexus-orchestrator/pkg/logger"
)

// Bridge ties the account registry, relationship table and router together.
// It is the single entry point for every decoded message, whether it came
// in over a live connection or out of a file-drop slot.
type Bridge struct {
	accounts drepo.AccountStore
	rels     drepo.RelationshipStore
	router   *Router
	hub      *ObserverHub

	metrics drepo.Metrics
	log     *logger.Logger
}

// NewBridge wires the bridge entry points.
func NewBridge(accounts drepo.AccountStore, rels drepo.RelationshipStore, router *Router, hub *ObserverHub, metrics drepo.Metrics, log *logger.Logger) *Bridge {
	return &Bridge{
		accounts: accounts,
		rels:     rels,
		router:   router,
		hub:      hub,
		metrics:  metrics,
		log:      log,
	}
}

// Hub exposes the observer hub so transport handlers can attach monitors.
func (b *Bridge) Hub() *ObserverHub {
	return b.hub
}

// HandlePlatformMessage processes one trading-endpoint message. ch is the
// live channel the message arrived on, nil for polled input. Errors mean
// the one message was discarded; the connection stays usable.
func (b *Bridge) HandlePlatformMessage(ctx context.Context, raw []byte, ch models.Channel) error {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &models.ValidationError{Message: fmt.Sprintf("malformed message: %v", err)}
	}

	switch env.Type {
	case models.TypeRegister:
		var req models.RegisterRequest
		if err := models.Decode(raw, &req); err != nil {
			return err
		}
		b.register(ctx, req, ch)
		return nil

	case models.TypeTradeSignal:
		var req models.TradeSignalRequest
		if err := models.Decode(raw, &req); err != nil {
			return err
		}
		b.router.Route(ctx, req.AccountID, req.TradeData)
		return nil

	case models.TypeHeartbeat:
		var req models.HeartbeatRequest
		if err := models.Decode(raw, &req); err != nil {
			return err
		}
		// Unknown accounts are ignored; heartbeats never auto-create.
		if b.accounts.MarkHeartbeat(req.AccountID) {
			b.metrics.SetConnectedAccounts(b.accounts.ConnectedCount())
		}
		return nil

	default:
		return &models.ValidationError{Field: "type", Message: fmt.Sprintf("unknown message type %q", env.Type)}
	}
}

func (b *Bridge) register(ctx context.Context, req models.RegisterRequest, ch models.Channel) {
	acc := b.accounts.Register(req.AccountID, req.Platform, req.AccountType, req.DisplayName, ch)
	b.metrics.SetConnectedAccounts(b.accounts.ConnectedCount())

	b.log.Info("account registered",
		logger.String("account_id", acc.AccountID),
		logger.String("platform", string(acc.Platform)),
		logger.String("account_type", string(acc.AccountType)),
	)

	b.hub.Notify(ctx, models.TypeAccountRegistered, models.AccountRegisteredEvent{
		Type:    models.TypeAccountRegistered,
		Account: *acc,
	})
}

// HandleMonitorMessage processes one monitor-endpoint message and returns
// the reply payload, or nil when the message type has no reply.
func (b *Bridge) HandleMonitorMessage(ctx context.Context, raw []byte) ([]byte, error) {
	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &models.ValidationError{Message: fmt.Sprintf("malformed message: %v", err)}
	}

	switch env.Type {
	case models.TypeGetAccounts:
		resp := models.AccountsListResponse{
			Type:     models.TypeAccountsList,
			Accounts: b.accounts.List(),
		}
		return json.Marshal(resp)

	case models.TypeCreateRelationship:
		var req models.CreateRelationshipRequest
		if err := models.Decode(raw, &req); err != nil {
			return nil, err
		}
		multiplier := 1.0
		if req.VolumeMultiplier != nil {
			multiplier = *req.VolumeMultiplier
		}
		rel := b.rels.Add(req.ProviderID, req.CopyerID, multiplier)
		b.log.Info("relationship created",
			logger.String("provider", rel.ProviderID),
			logger.String("copyer", rel.CopyerID),
			logger.Float64("multiplier", rel.VolumeMultiplier),
		)
		return nil, nil

	case models.TypeGetRelationships:
		resp := models.RelationshipsListResponse{
			Type:          models.TypeRelationshipsList,
			Relationships: b.rels.List(),
		}
		return json.Marshal(resp)

	default:
		return nil, &models.ValidationError{Field: "type", Message: fmt.Sprintf("unknown message type %q", env.Type)}
	}
}

// Disconnected downgrades liveness for every account bound to ch. The
// accounts themselves stay in the registry.
func (b *Bridge) Disconnected(ch models.Channel) {
	affected := b.accounts.MarkDisconnected(ch)
	for _, id := range affected {
		b.log.Info("account disconnected", logger.String("account_id", id))
	}
	if len(affected) > 0 {
		b.metrics.SetConnectedAccounts(b.accounts.ConnectedCount())
	}
}
