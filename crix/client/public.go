package client

import (
	"context"
	"time"

	"github.com/crix-exchange/go-crix/crix/types"
)

// Response envelopes. The exchange wraps every list payload in a
// single-key object named after the repeated field.
type (
	symbolsEnvelope struct {
		Symbol []types.Symbol `json:"symbol"`
	}
	ohlcEnvelope struct {
		OHLC []types.Ticker `json:"ohlc"`
	}
	tickers24Envelope struct {
		OHLC []types.Ticker24 `json:"ohlc"`
	}
	tradesEnvelope struct {
		Trades []types.Trade `json:"trades"`
	}
	feesEnvelope struct {
		Fees []types.VolumeFee `json:"fees"`
	}
	ordersEnvelope struct {
		Orders []types.Order `json:"orders"`
	}
	accountsEnvelope struct {
		Accounts []types.Account `json:"accounts"`
	}
)

// FetchMarkets returns all symbols on the exchange with their trading
// rules. The result is cached per the client's RefreshPolicy; force
// bypasses and replaces the cached value.
func (c *Client) FetchMarkets(ctx context.Context, force bool) ([]types.Symbol, error) {
	return c.markets.get(force, func() ([]types.Symbol, error) {
		var env symbolsEnvelope
		if err := c.get(ctx, "fetch-markets", EndpointSymbols, &env); err != nil {
			return nil, err
		}
		return env.Symbol, nil
	})
}

// FetchCurrencyCodes returns all currency pair codes in base_quote
// format (ex. btc_usd), honoring the market cache.
func (c *Client) FetchCurrencyCodes(ctx context.Context) ([]string, error) {
	markets, err := c.FetchMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(markets))
	for _, sym := range markets {
		codes = append(codes, sym.CurrencyCode())
	}
	return codes, nil
}

type depthRequest struct {
	SymbolName       string `json:"symbolName"`
	LevelAggregation string `json:"strLevelAggregation,omitempty"`
}

// FetchOrderBook returns the order book for a symbol. levelAggregation
// rounds price levels server-side; pass "" for the raw book.
func (c *Client) FetchOrderBook(ctx context.Context, symbol, levelAggregation string) (*types.Depth, error) {
	var depth types.Depth
	body := reqEnvelope{depthRequest{SymbolName: symbol, LevelAggregation: levelAggregation}}
	if err := c.post(ctx, "fetch-order-book", EndpointDepths, body, &depth); err != nil {
		return nil, err
	}
	return &depth, nil
}

// FetchTicker returns 24-hour tickers for all symbols.
func (c *Client) FetchTicker(ctx context.Context) ([]types.Ticker24, error) {
	var env tickers24Envelope
	if err := c.get(ctx, "ticker", EndpointTickers24, &env); err != nil {
		return nil, err
	}
	return env.OHLC, nil
}

type klinesRequest struct {
	StartTime  types.Millis     `json:"startTime"`
	EndTime    types.Millis     `json:"endTime"`
	SymbolName string           `json:"symbolName"`
	Resolution types.Resolution `json:"resolution"`
	Limit      int              `json:"limit"`
}

// FetchOHLCV returns K-lines for a symbol between start and end. The
// latest candle covers the interval up to the current minute. Times go
// on the wire as epoch milliseconds.
func (c *Client) FetchOHLCV(ctx context.Context, symbol string, start, end time.Time, resolution types.Resolution, limit int) ([]types.Ticker, error) {
	if limit <= 0 {
		limit = 10
	}
	body := reqEnvelope{klinesRequest{
		StartTime:  types.MillisFromTime(start),
		EndTime:    types.MillisFromTime(end),
		SymbolName: symbol,
		Resolution: resolution,
		Limit:      limit,
	}}
	var env ohlcEnvelope
	if err := c.post(ctx, "fetch-ohlcv", EndpointKlines, body, &env); err != nil {
		return nil, err
	}
	return env.OHLC, nil
}

type symbolLimitRequest struct {
	SymbolName string `json:"symbolName"`
	Limit      int    `json:"limit"`
}

// FetchTrades returns the last public trades for a symbol, newest data
// as the server sends it. OrderID, UserID, Fee and FeeCurrency are empty
// on public trades. limit caps the response (server max 1000).
func (c *Client) FetchTrades(ctx context.Context, symbol string, limit int) ([]types.Trade, error) {
	if limit <= 0 {
		limit = 100
	}
	var env tradesEnvelope
	body := reqEnvelope{symbolLimitRequest{SymbolName: symbol, Limit: limit}}
	if err := c.post(ctx, "fetch-trades", EndpointTrades, body, &env); err != nil {
		return nil, err
	}
	return env.Trades, nil
}

type symbolRequest struct {
	SymbolName string `json:"symbolName"`
}

// FetchVolumeFees returns the volume-based fee tiers for a symbol.
// Tiers arrive unsorted.
func (c *Client) FetchVolumeFees(ctx context.Context, symbol string) ([]types.VolumeFee, error) {
	var env feesEnvelope
	body := reqEnvelope{symbolRequest{SymbolName: symbol}}
	if err := c.post(ctx, "fetch-volume-fees", EndpointVolumeFee, body, &env); err != nil {
		return nil, err
	}
	return env.Fees, nil
}
