package types

import "github.com/shopspring/decimal"

// Order is an order definition as reported by the exchange. Quantity and
// prices arrive as numeric strings and are decoded into decimals.
type Order struct {
	ID          int64           `json:"id,string"`
	SymbolName  string          `json:"symbolName"`
	UserID      string          `json:"userId"`
	Side        Side            `json:"side"`
	Type        OrderType       `json:"type"`
	LimitPrice  decimal.Decimal `json:"limitPrice"`
	StopPrice   decimal.Decimal `json:"stopPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Filled      decimal.Decimal `json:"filledQuantity"`
	Status      OrderStatus     `json:"status"`
	TimeInForce TimeInForce     `json:"timeInForce"`
	CreatedAt   Millis          `json:"createdAt"`
	UpdatedAt   Millis          `json:"updatedAt"`
	ExpireTime  Millis          `json:"expireTime"`
}

// IsOpen reports whether the order can still trade.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusNew || o.Status == OrderStatusPartiallyFilled
}

// NewOrder carries the parameters for placing an order via
// /user/order/create. Zero-valued optional fields are omitted from the
// request body.
type NewOrder struct {
	SymbolName  string           `json:"symbolName"`
	Side        Side             `json:"side"`
	Type        OrderType        `json:"type"`
	LimitPrice  *decimal.Decimal `json:"limitPrice,omitempty"`
	StopPrice   *decimal.Decimal `json:"stopPrice,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity"`
	TimeInForce TimeInForce      `json:"timeInForce,omitempty"`
	ExpireTime  Millis           `json:"expireTime,omitempty"`
}
