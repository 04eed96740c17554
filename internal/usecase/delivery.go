package usecase

import (
	"context"
	"fmt"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
	drepo "github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/repository"
)

// Transport labels used in metrics and delivery errors.
const (
	TransportLive     = "live"
	TransportFileDrop = "filedrop"
)

// DeliveryService sends one encoded message to one account over whichever
// transport the account is bound to. The router never branches on transport
// kind; that decision lives here and only here.
type DeliveryService struct {
	slots   drepo.CommandSlots
	metrics drepo.Metrics
}

// NewDeliveryService creates a delivery service backed by the given
// file-drop command slots.
func NewDeliveryService(slots drepo.CommandSlots, metrics drepo.Metrics) *DeliveryService {
	return &DeliveryService{slots: slots, metrics: metrics}
}

// Deliver pushes payload to the account's live channel, or to its file-drop
// command slot when no live channel is bound. A slot write overwrites any
// unread prior command.
func (d *DeliveryService) Deliver(ctx context.Context, acc *models.Account, payload []byte) error {
	transport := TransportLive
	var err error
	if acc.Channel != nil {
		err = acc.Channel.Send(ctx, payload)
	} else {
		transport = TransportFileDrop
		err = d.slots.WriteCommand(acc.AccountID, payload)
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	d.metrics.RecordDelivery(transport, result)

	if err != nil {
		return fmt.Errorf("deliver to %s over %s: %w", acc.AccountID, transport, err)
	}
	return nil
}
