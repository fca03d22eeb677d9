package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol describes a tradable market and its trading rules.
// Fetched from /info/symbols and held immutable inside the market cache.
type Symbol struct {
	Name          string          `json:"symbolName"`
	Base          string          `json:"baseCurrency"`
	Quote         string          `json:"quoteCurrency"`
	BaseDecimals  int             `json:"basePrecision"`
	QuoteDecimals int             `json:"quotePrecision"`
	MinLot        decimal.Decimal `json:"minLotSize"`
	MaxLot        decimal.Decimal `json:"maxLotSize"`
	TickSize      decimal.Decimal `json:"tickSize"`
}

// CurrencyCode returns the pair in base_quote format, lowercased
// (ex. btc_usd), the format used across CRIX public data feeds.
func (s Symbol) CurrencyCode() string {
	return strings.ToLower(s.Base + "_" + s.Quote)
}
