package repository

import (
	"sync"

	"github.com/bl00dycrusher/trade-nexus-orchestrator/internal/domain/models"
)

// AccountRegistry is the in-memory account store. State lives only for the
// lifetime of the process; accounts are soft-removed by flipping liveness,
// never deleted.
//
// Handlers run on separate goroutines per connection, so every operation
// takes the registry lock.
type AccountRegistry struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRegistry creates an empty registry.
func NewAccountRegistry() *AccountRegistry {
	return &AccountRegistry{
		accounts: make(map[string]*models.Account),
	}
}

// Register upserts the account, marks it live and binds ch. Re-registering
// an existing id overwrites the entry in place (last write wins), so the
// registry never grows a duplicate for the same account.
func (r *AccountRegistry) Register(accountID string, platform models.Platform, accountType models.AccountType, displayName string, ch models.Channel) *models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc := &models.Account{
		AccountID:   accountID,
		Platform:    platform,
		AccountType: accountType,
		DisplayName: displayName,
		Connected:   true,
		Channel:     ch,
	}
	r.accounts[accountID] = acc

	cp := *acc
	return &cp
}

// MarkHeartbeat flips liveness on for a known account. Unknown ids no-op.
func (r *AccountRegistry) MarkHeartbeat(accountID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return false
	}
	acc.Connected = true
	return true
}

// MarkDisconnected downgrades liveness for every account bound to ch.
// Several accounts may share one transport connection.
func (r *AccountRegistry) MarkDisconnected(ch models.Channel) []string {
	if ch == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var affected []string
	for id, acc := range r.accounts {
		if acc.Channel == ch {
			acc.Connected = false
			affected = append(affected, id)
		}
	}
	return affected
}

// Get returns a snapshot of the account, or (nil, false) if unknown.
func (r *AccountRegistry) Get(accountID string) (*models.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, false
	}
	cp := *acc
	return &cp, true
}

// List returns a snapshot of all known accounts, order unspecified.
func (r *AccountRegistry) List() []models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, *acc)
	}
	return out
}

// ConnectedCount reports how many accounts are currently live.
func (r *AccountRegistry) ConnectedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, acc := range r.accounts {
		if acc.Connected {
			n++
		}
	}
	return n
}
