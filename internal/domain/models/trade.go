package models

// TradeAction is the side of a trade instruction.
type TradeAction string

const (
	ActionBuy  TradeAction = "BUY"
	ActionSell TradeAction = "SELL"
)

// TradeSignal is one trade instruction as it travels through the relay.
// It is a value object: routing never mutates the inbound signal, it
// builds a fresh copy per target with the volume scaled.
type TradeSignal struct {
	Symbol      string      `json:"symbol" validate:"required"`
	Action      TradeAction `json:"action" validate:"required,oneof=BUY SELL"`
	Volume      float64     `json:"volume"`
	Price       float64     `json:"price"`
	SL          float64     `json:"sl"`
	TP          float64     `json:"tp"`
	Comment     string      `json:"comment"`
	MagicNumber int         `json:"magic_number"`
	Timestamp   string      `json:"timestamp"`
}
