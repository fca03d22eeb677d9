// Package types defines the wire entities of the CRIX exchange API v1.
//
// All structs map one-to-one onto the JSON the exchange sends. They are
// decoded once and never mutated afterwards; pointers returned by the
// client are owned by the caller.
package types

import "time"

// Side is the order/trade side.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType is the exchange order type.
type OrderType string

const (
	OrderTypeLimit      OrderType = "LIMIT"
	OrderTypeMarket     OrderType = "MARKET"
	OrderTypeStopLoss   OrderType = "STOP_LOSS"
	OrderTypeTakeProfit OrderType = "TAKE_PROFIT"
)

// OrderStatus is the lifecycle state reported by the exchange.
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "NEW"
	OrderStatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	OrderStatusFilled          OrderStatus = "FILLED"
	OrderStatusCanceled        OrderStatus = "CANCELED"
	OrderStatusRejected        OrderStatus = "REJECTED"
	OrderStatusExpired         OrderStatus = "EXPIRED"
)

// TimeInForce controls how long an order stays on the book.
type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "GTC"
	TimeInForceIOC TimeInForce = "IOC"
	TimeInForceFOK TimeInForce = "FOK"
	TimeInForceDay TimeInForce = "DAY"
)

// Resolution is a K-line resolution accepted by the /klines endpoint.
type Resolution string

const (
	ResolutionOneMinute      Resolution = "1m"
	ResolutionFiveMinutes    Resolution = "5m"
	ResolutionFifteenMinutes Resolution = "15m"
	ResolutionThirtyMinutes  Resolution = "30m"
	ResolutionOneHour        Resolution = "1h"
	ResolutionFourHours      Resolution = "4h"
	ResolutionTwelveHours    Resolution = "12h"
	ResolutionOneDay         Resolution = "1d"
)

// Millis is an epoch-millisecond timestamp as transmitted by the exchange.
type Millis int64

// Time converts the timestamp to a time.Time in UTC.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

// MillisFromTime converts a time.Time to the wire representation.
func MillisFromTime(t time.Time) Millis {
	return Millis(t.UnixMilli())
}
