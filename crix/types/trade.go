package types

import "github.com/shopspring/decimal"

// Trade is a single fill. Public /trades responses leave OrderID, UserID,
// Fee and FeeCurrency empty; /user/trades fills them in.
type Trade struct {
	ID          int64           `json:"id,string"`
	SymbolName  string          `json:"symbolName"`
	OrderID     int64           `json:"orderId,string"`
	UserID      string          `json:"userId"`
	Side        Side            `json:"side"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	Fee         decimal.Decimal `json:"fee"`
	FeeCurrency string          `json:"feeCurrency"`
	CreatedAt   Millis          `json:"createdAt"`
}
