package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/crix-exchange/go-crix/crix/signing"
	"github.com/crix-exchange/go-crix/crix/types"
)

// Credentials is the API token/secret pair issued by the exchange as
// part of bot API access. The secret is used only to key request
// signatures; it is never logged or sent on the wire.
type Credentials struct {
	Token  string
	Secret string
}

// AuthClient is the public client plus the authentication capability for
// the /user endpoints. It is a composition, not a subtype: every public
// operation stays available through the embedded Client, and only
// signedPost ever touches the credentials.
type AuthClient struct {
	*Client
	creds Credentials
}

// NewAuthClient creates a client for authorized and public requests.
func NewAuthClient(token, secret, env string) *AuthClient {
	return &AuthClient{
		Client: NewClient(env),
		creds:  Credentials{Token: token, Secret: secret},
	}
}

// signedPost serializes body once, signs exactly those bytes, and sends
// them with the X-Api-Signed-Token header.
func (a *AuthClient) signedPost(ctx context.Context, op, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "%s: encode request", op)
	}
	headers := map[string]string{
		signing.Header: signing.HeaderValue(a.creds.Token, a.creds.Secret, payload),
	}
	return a.do(ctx, op, http.MethodPost, path, payload, headers, out)
}

// FetchBalance returns all account balances for the user.
func (a *AuthClient) FetchBalance(ctx context.Context) ([]types.Account, error) {
	var env accountsEnvelope
	if err := a.signedPost(ctx, "fetch-balance", EndpointAccounts, struct{}{}, &env); err != nil {
		return nil, err
	}
	return env.Accounts, nil
}

type orderRefRequest struct {
	OrderID    int64  `json:"orderId"`
	SymbolName string `json:"symbolName"`
}

// CancelOrder cancels a placed order. The returned definition includes
// the quantity filled before cancellation.
func (a *AuthClient) CancelOrder(ctx context.Context, orderID int64, symbol string) (*types.Order, error) {
	var order types.Order
	body := reqEnvelope{orderRefRequest{OrderID: orderID, SymbolName: symbol}}
	if err := a.signedPost(ctx, "cancel-order", EndpointOrderCancel, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places an order and returns the definition filled in by
// the exchange.
func (a *AuthClient) CreateOrder(ctx context.Context, newOrder types.NewOrder) (*types.Order, error) {
	var order types.Order
	if err := a.signedPost(ctx, "create-order", EndpointOrderCreate, reqEnvelope{newOrder}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchOrder returns a single order by id, or (nil, nil) when the
// exchange reports it as not found. Any other error propagates.
func (a *AuthClient) FetchOrder(ctx context.Context, orderID int64, symbol string) (*types.Order, error) {
	var order types.Order
	body := reqEnvelope{orderRefRequest{OrderID: orderID, SymbolName: symbol}}
	err := a.signedPost(ctx, "fetch-order", EndpointOrderInfo, body, &order)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.NotFound() {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

type historyRequest struct {
	Currency      string `json:"currency"`
	FromTimestamp int64  `json:"fromTimestamp"`
	ToTimestamp   int64  `json:"toTimestamp"`
}

// FetchHistory returns historical minute tickers for a currency (upper
// case) in [begin, end]. Caveats: requires an extra API permission, end
// must not exceed server time, and the range is capped at 366 days.
// Unlike the kline endpoints, the range goes on the wire as epoch
// seconds.
func (a *AuthClient) FetchHistory(ctx context.Context, begin, end time.Time, currency string) ([]types.Ticker, error) {
	body := reqEnvelope{historyRequest{
		Currency:      currency,
		FromTimestamp: begin.Unix(),
		ToTimestamp:   end.Unix(),
	}}
	var rows []types.HistoryTicker
	if err := a.signedPost(ctx, "fetch-history", EndpointRatesHistory, body, &rows); err != nil {
		return nil, err
	}
	tickers := make([]types.Ticker, 0, len(rows))
	for _, row := range rows {
		tickers = append(tickers, row.Ticker())
	}
	return tickers, nil
}
