package models

import "context"

// Platform identifies the trading platform an account runs on.
type Platform string

const (
	PlatformMT5     Platform = "mt5"
	PlatformCTrader Platform = "ctrader"
)

// Valid reports whether p is a known platform tag.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMT5, PlatformCTrader:
		return true
	}
	return false
}

// AccountType describes the role of an account in copy routing.
type AccountType string

const (
	AccountProvider AccountType = "provider"
	AccountCopyer   AccountType = "copyer"
	AccountBoth     AccountType = "both"
)

// Valid reports whether t is a known account role.
func (t AccountType) Valid() bool {
	switch t {
	case AccountProvider, AccountCopyer, AccountBoth:
		return true
	}
	return false
}

// Channel delivers one encoded message to a single counterparty endpoint.
// Implementations: live websocket connection, file-drop command slot.
type Channel interface {
	Send(ctx context.Context, payload []byte) error
}

// Account is a registered trading endpoint. Accounts are never deleted;
// a transport loss only flips Connected off, and re-registering the same
// account id overwrites the entry in place.
type Account struct {
	AccountID   string      `json:"account_id"`
	Platform    Platform    `json:"platform"`
	AccountType AccountType `json:"account_type"`
	DisplayName string      `json:"display_name"`
	Connected   bool        `json:"is_connected"`

	// Channel is the bound live transport; nil means the account talks
	// through the file-drop slots. The account does not own the channel
	// lifecycle, it only references it.
	Channel Channel `json:"-"`
}
