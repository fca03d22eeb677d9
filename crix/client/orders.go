package client

import (
	"context"

	"github.com/crix-exchange/go-crix/crix/types"
)

const defaultPageLimit = 1000

// fetchOrderPage issues one signed request for one symbol against an
// order-list endpoint and returns the page in server order.
func (a *AuthClient) fetchOrderPage(op, endpoint string, limit int) pageFunc[types.Order] {
	return func(ctx context.Context, symbol string) ([]types.Order, error) {
		var env ordersEnvelope
		body := reqEnvelope{symbolLimitRequest{SymbolName: symbol, Limit: limit}}
		if err := a.signedPost(ctx, op, endpoint, body, &env); err != nil {
			return nil, err
		}
		return env.Orders, nil
	}
}

// FetchOpenOrders returns a lazy iterator over the user's open orders.
//
// One request is made per symbol. When no symbols are given, all
// supported symbols are used, which costs an additional market-list
// request on the first Next. limit caps orders per symbol (0 = 1000).
func (a *AuthClient) FetchOpenOrders(ctx context.Context, limit int, symbols ...string) *OrderIter {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return newIter(ctx, symbols, a.resolveSymbols0,
		a.fetchOrderPage("fetch-open-orders", EndpointOpenOrders, limit))
}

// FetchClosedOrders returns a lazy iterator over the user's complete
// (filled, canceled) orders. Request pattern and limit semantics match
// FetchOpenOrders.
func (a *AuthClient) FetchClosedOrders(ctx context.Context, limit int, symbols ...string) *OrderIter {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return newIter(ctx, symbols, a.resolveSymbols0,
		a.fetchOrderPage("fetch-closed-orders", EndpointClosedOrders, limit))
}

// FetchOrders returns a lazy iterator over open and closed orders,
// sorted from open to close: for each symbol, all open orders are
// yielded before any closed order of that symbol, before moving to the
// next symbol. Two requests per symbol. limit applies per symbol per
// state.
func (a *AuthClient) FetchOrders(ctx context.Context, limit int, symbols ...string) *OrderIter {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return newIter(ctx, symbols, a.resolveSymbols0,
		a.fetchOrderPage("fetch-open-orders", EndpointOpenOrders, limit),
		a.fetchOrderPage("fetch-closed-orders", EndpointClosedOrders, limit))
}

// FetchMyTrades returns a lazy iterator over the user's trades. There is
// a small gap (a few ms) between a trade happening and it becoming
// visible here. Request pattern and limit semantics match
// FetchOpenOrders.
func (a *AuthClient) FetchMyTrades(ctx context.Context, limit int, symbols ...string) *TradeIter {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	fetch := func(ctx context.Context, symbol string) ([]types.Trade, error) {
		var env tradesEnvelope
		body := reqEnvelope{symbolLimitRequest{SymbolName: symbol, Limit: limit}}
		if err := a.signedPost(ctx, "fetch-my-trades", EndpointUserTrades, body, &env); err != nil {
			return nil, err
		}
		return env.Trades, nil
	}
	return newIter(ctx, symbols, a.resolveSymbols0, fetch)
}

// resolveSymbols0 adapts resolveSymbols to the iterator's deferred
// resolution hook (explicit symbols were already ruled out by newIter).
func (a *AuthClient) resolveSymbols0(ctx context.Context) ([]string, error) {
	return a.resolveSymbols(ctx, nil)
}
