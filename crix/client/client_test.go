package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"mvp", "https://mvp.crix.io/api/v1"},
		{"staging", "https://staging.crix.io/api/v1"},
		{"prod", "https://crix.io/api/v1"},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseURL(tt.env))
		})
	}
}

func TestFetchMarketsCachesUntilForced(t *testing.T) {
	f := newFakeExchange(t)
	f.handleJSON(EndpointSymbols, marketDoc(symbolDoc("BTCUSD", "BTC", "USD")))
	c := f.client()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		markets, err := c.FetchMarkets(ctx, false)
		require.NoError(t, err)
		require.Len(t, markets, 1)
	}
	assert.Equal(t, 1, f.calls(EndpointSymbols), "sequential calls must reuse the cache")

	_, err := c.FetchMarkets(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls(EndpointSymbols), "force must refetch")

	_, err = c.FetchMarkets(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, f.calls(EndpointSymbols), "force result must repopulate the cache")
}

func TestFetchMarketsNeverCache(t *testing.T) {
	f := newFakeExchange(t)
	f.handleJSON(EndpointSymbols, marketDoc(symbolDoc("BTCUSD", "BTC", "USD")))
	c := f.client().SetRefreshPolicy(NeverCache)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.FetchMarkets(ctx, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, f.calls(EndpointSymbols))
}

func TestFetchCurrencyCodes(t *testing.T) {
	f := newFakeExchange(t)
	f.handleJSON(EndpointSymbols, marketDoc(symbolDoc("BTCUSD", "BTC", "USD")))
	c := f.client()

	codes, err := c.FetchCurrencyCodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"btc_usd"}, codes)
}

func TestResolveSymbols(t *testing.T) {
	f := newFakeExchange(t)
	f.handleJSON(EndpointSymbols, marketDoc(
		symbolDoc("BTCUSD", "BTC", "USD"),
		symbolDoc("ETHUSD", "ETH", "USD"),
	))
	c := f.client()
	ctx := context.Background()

	t.Run("explicit list passes through with order and duplicates", func(t *testing.T) {
		got, err := c.resolveSymbols(ctx, []string{"ETHUSD", "BTCUSD", "ETHUSD"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ETHUSD", "BTCUSD", "ETHUSD"}, got)
		assert.Equal(t, 0, f.calls(EndpointSymbols), "explicit symbols must not hit the network")
	})

	t.Run("empty list resolves to all markets in server order", func(t *testing.T) {
		got, err := c.resolveSymbols(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"BTCUSD", "ETHUSD"}, got)
		assert.Equal(t, 1, f.calls(EndpointSymbols))
	})
}

func TestAPIErrorClassification(t *testing.T) {
	f := newFakeExchange(t)
	f.handle(EndpointTickers24, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "symbols temporarily unavailable", http.StatusBadGateway)
	})
	c := f.client()

	_, err := c.FetchTicker(context.Background())
	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "non-2xx must classify as APIError")
	assert.Equal(t, "ticker", apiErr.Op)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "temporarily unavailable")
	assert.False(t, apiErr.NotFound())
}

func TestDecodeErrorIsNotAPIError(t *testing.T) {
	f := newFakeExchange(t)
	f.handle(EndpointTickers24, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	})
	c := f.client()

	_, err := c.FetchTicker(context.Background())
	require.Error(t, err)
	_, ok := AsAPIError(err)
	assert.False(t, ok, "malformed success body is a decode error, not an APIError")
}
