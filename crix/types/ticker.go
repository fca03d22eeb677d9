package types

import "github.com/shopspring/decimal"

// Ticker is one OHLCV candle from /klines.
// Time is the candle open time in epoch milliseconds.
type Ticker struct {
	Time   Millis          `json:"time"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// HistoryTicker is a minute candle row from /user/rates/history. The
// history endpoint transmits epoch seconds, unlike every other candle
// endpoint; Ticker converts to the common millisecond representation.
type HistoryTicker struct {
	Timestamp int64           `json:"timestamp"` // epoch seconds
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}

// Ticker converts a history row to the common candle shape.
func (h HistoryTicker) Ticker() Ticker {
	return Ticker{
		Time:   Millis(h.Timestamp * 1000),
		Open:   h.Open,
		High:   h.High,
		Low:    h.Low,
		Close:  h.Close,
		Volume: h.Volume,
	}
}

// Ticker24 is a rolling 24h ticker from /tickers24.
type Ticker24 struct {
	SymbolName string          `json:"symbolName"`
	Open       decimal.Decimal `json:"open"`
	High       decimal.Decimal `json:"high"`
	Low        decimal.Decimal `json:"low"`
	Close      decimal.Decimal `json:"close"`
	Volume     decimal.Decimal `json:"volume"`
}
