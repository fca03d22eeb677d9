package types

import "github.com/shopspring/decimal"

// DepthLevel is one price level of the order book.
type DepthLevel struct {
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Depth is an order book snapshot from /depths. Bids are returned highest
// first, asks lowest first, in the order sent by the exchange.
type Depth struct {
	SymbolName string       `json:"symbolName"`
	Bids       []DepthLevel `json:"bids"`
	Asks       []DepthLevel `json:"asks"`
}
