package client

// API v1 endpoint paths, relative to the environment base URL.
const (
	// Public market data
	EndpointSymbols   = "/info/symbols"
	EndpointDepths    = "/depths"
	EndpointTickers24 = "/tickers24"
	EndpointKlines    = "/klines"
	EndpointTrades    = "/trades"
	EndpointVolumeFee = "/info/fee/volume"

	// Authenticated user endpoints
	EndpointOpenOrders   = "/user/orders/open"
	EndpointClosedOrders = "/user/orders/complete"
	EndpointUserTrades   = "/user/trades"
	EndpointAccounts     = "/user/accounts"
	EndpointOrderCancel  = "/user/order/cancel"
	EndpointOrderCreate  = "/user/order/create"
	EndpointOrderInfo    = "/user/order/info"
	EndpointRatesHistory = "/user/rates/history"
)

// EnvProduction is the distinguished environment served from the bare
// domain. Any other environment name selects a subdomain, e.g. "mvp" →
// https://mvp.crix.io/api/v1.
const EnvProduction = "prod"

const apiDomain = "crix.io"

// BaseURL returns the API base URL for an environment name.
func BaseURL(env string) string {
	if env == EnvProduction {
		return "https://" + apiDomain + "/api/v1"
	}
	return "https://" + env + "." + apiDomain + "/api/v1"
}
