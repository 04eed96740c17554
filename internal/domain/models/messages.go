package models

// Message types exchanged over the trading and monitor endpoints, plus the
// server pushes. The file-drop transport uses the same trading vocabulary.
const (
	TypeRegister    = "register"
	TypeTradeSignal = "trade_signal"
	TypeHeartbeat   = "heartbeat"

	TypeGetAccounts        = "get_accounts"
	TypeCreateRelationship = "create_relationship"
	TypeGetRelationships   = "get_relationships"

	TypeAccountsList      = "accounts_list"
	TypeRelationshipsList = "relationships_list"
	TypeAccountRegistered = "account_registered"
	TypeTradeCopied       = "trade_copied"
	TypeExecuteTrade      = "execute_trade"
)

// Envelope carries just the discriminator; the full payload is decoded a
// second time into the matching request type.
type Envelope struct {
	Type string `json:"type"`
}

// RegisterRequest announces an account on the trading endpoint.
type RegisterRequest struct {
	Type        string      `json:"type"`
	AccountID   string      `json:"account_id" validate:"required"`
	Platform    Platform    `json:"platform" validate:"required,oneof=mt5 ctrader"`
	AccountType AccountType `json:"account_type" validate:"required,oneof=provider copyer both"`
	DisplayName string      `json:"display_name"`
}

// TradeSignalRequest carries a trade instruction from a provider.
type TradeSignalRequest struct {
	Type      string      `json:"type"`
	AccountID string      `json:"account_id" validate:"required"`
	TradeData TradeSignal `json:"trade_data" validate:"required"`
}

// HeartbeatRequest keeps an account marked live.
type HeartbeatRequest struct {
	Type      string `json:"type"`
	AccountID string `json:"account_id" validate:"required"`
}

// CreateRelationshipRequest links a provider to a copyer. The multiplier is
// a pointer so an explicit zero survives defaulting.
type CreateRelationshipRequest struct {
	Type             string   `json:"type"`
	ProviderID       string   `json:"provider_id" validate:"required"`
	CopyerID         string   `json:"copyer_id" validate:"required"`
	VolumeMultiplier *float64 `json:"volume_multiplier" default:"1.0" validate:"omitempty,gte=0"`
}

// ExecuteTradeMessage is pushed to a copyer's channel.
type ExecuteTradeMessage struct {
	Type      string      `json:"type"`
	TradeData TradeSignal `json:"trade_data"`
}

// NewExecuteTrade wraps an adjusted signal for delivery.
func NewExecuteTrade(sig TradeSignal) ExecuteTradeMessage {
	return ExecuteTradeMessage{Type: TypeExecuteTrade, TradeData: sig}
}

// AccountRegisteredEvent is pushed to monitor connections on registration.
type AccountRegisteredEvent struct {
	Type    string  `json:"type"`
	Account Account `json:"account"`
}

// TradeCopiedEvent is pushed to monitor connections per dispatched copy.
type TradeCopiedEvent struct {
	Type  string      `json:"type"`
	From  string      `json:"from"`
	To    string      `json:"to"`
	Trade TradeSignal `json:"trade"`
}

// AccountsListResponse answers a get_accounts query.
type AccountsListResponse struct {
	Type     string    `json:"type"`
	Accounts []Account `json:"accounts"`
}

// RelationshipsListResponse answers a get_relationships query.
type RelationshipsListResponse struct {
	Type          string         `json:"type"`
	Relationships []Relationship `json:"relationships"`
}
