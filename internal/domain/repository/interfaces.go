package repository

import (
	"context"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
)

// AccountStore is the registry of every trading endpoint the relay has seen.
// Implementations must be safe for concurrent handlers.
type AccountStore interface {
	// Register upserts the account, marks it live and binds ch (nil for
	// file-drop accounts). Returns a snapshot of the stored account.
	Register(accountID string, platform models.Platform, accountType models.AccountType, displayName string, ch models.Channel) *models.Account
	// MarkHeartbeat flips liveness on for a known account. Unknown ids are
	// a no-op and report false; heartbeats never auto-create accounts.
	MarkHeartbeat(accountID string) bool
	// MarkDisconnected downgrades liveness for every account bound to ch
	// and returns the affected account ids.
	MarkDisconnected(ch models.Channel) []string
	Get(accountID string) (*models.Account, bool)
	List() []models.Account
	ConnectedCount() int
}

// RelationshipStore holds provider→copyer links in creation order. Creation
// order is the delivery order on fan-out.
type RelationshipStore interface {
	Add(providerID, copyerID string, multiplier float64) models.Relationship
	ActiveForProvider(providerID string) []models.Relationship
	List() []models.Relationship
}

// CommandSlots is the outbound half of the file-drop transport: one
// overwrite-on-write slot per account id, last write wins.
type CommandSlots interface {
	WriteCommand(accountID string, payload []byte) error
}

// EventSink receives copy events for out-of-process consumers. May be nil
// when journaling is disabled.
type EventSink interface {
	Publish(ctx context.Context, key string, event interface{}) error
	Close() error
}

// Metrics abstracts operational counters so the core stays test-friendly.
type Metrics interface {
	RecordSignalRouted(providerID, symbol string)
	RecordDelivery(transport, result string)
	RecordObserverEvent(kind string)
	RecordError(kind string)
	RecordPollCycle(seconds float64)
	SetConnectedAccounts(n int)
	SetObservers(n int)
}
