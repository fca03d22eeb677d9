// Package client implements the CRIX exchange REST binding: a public
// Client for market data and an AuthClient that adds the signed user
// endpoints on top of it.
package client

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/crix-exchange/go-crix/crix/types"
)

// Client talks to the public CRIX API.
//
// Supported environments:
//
//   - "mvp"  — testnet sandbox, wiped roughly every second week
//   - "prod" — mainnet with real currency
//
// Use RefreshPolicy NeverCache when the latest symbol metadata is always
// required.
type Client struct {
	env     string
	baseURL string
	http    *resty.Client
	log     logrus.FieldLogger
	markets *marketCache
}

// NewClient creates a public client for the given environment. Market
// metadata is cached until an explicit force refresh by default.
func NewClient(env string) *Client {
	rc := resty.New().
		SetBaseURL(BaseURL(env)).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "go-crix")

	return &Client{
		env:     env,
		baseURL: BaseURL(env),
		http:    rc,
		log:     logrus.StandardLogger(),
		markets: newMarketCache(CacheUntilForced),
	}
}

// Environment returns the environment name this client targets.
func (c *Client) Environment() string {
	return c.env
}

// SetLogger replaces the client logger. Credentials never reach it.
func (c *Client) SetLogger(log logrus.FieldLogger) *Client {
	c.log = log
	return c
}

// SetHTTPClient replaces the underlying resty client. Timeouts, proxies
// and TLS settings belong there; this package adds none of its own.
func (c *Client) SetHTTPClient(rc *resty.Client) *Client {
	c.http = rc
	return c
}

// SetRefreshPolicy replaces the market metadata caching policy.
func (c *Client) SetRefreshPolicy(policy RefreshPolicy) *Client {
	c.markets = newMarketCache(policy)
	return c
}

// resolveSymbols returns the working symbol set for a multi-symbol
// operation. A non-empty explicit list is returned unchanged, order and
// duplicates preserved. An empty list falls back to the full market list
// (one extra round trip, honoring the cache policy), in server order.
func (c *Client) resolveSymbols(ctx context.Context, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	markets, err := c.FetchMarkets(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(markets))
	for _, sym := range markets {
		names = append(names, sym.Name)
	}
	return names, nil
}

func newMarketCache(policy RefreshPolicy) *marketCache {
	return &marketCache{policy: policy}
}

// RefreshPolicy controls how FetchMarkets reuses previous results.
type RefreshPolicy int

const (
	// CacheUntilForced keeps the last successful market list until a
	// force refresh replaces it.
	CacheUntilForced RefreshPolicy = iota
	// NeverCache fetches on every call and stores nothing.
	NeverCache
)

// marketCache memoizes the last market-metadata fetch. It takes no lock;
// concurrent refreshes may both fetch and the last assignment wins, which
// is acceptable for metadata that changes rarely.
type marketCache struct {
	policy  RefreshPolicy
	symbols []types.Symbol // nil until the first successful fetch
}

func (m *marketCache) get(force bool, fetch func() ([]types.Symbol, error)) ([]types.Symbol, error) {
	if m.policy == NeverCache || force || m.symbols == nil {
		symbols, err := fetch()
		if err != nil {
			return nil, err
		}
		if m.policy != NeverCache {
			m.symbols = symbols
		}
		return symbols, nil
	}
	return m.symbols, nil
}
