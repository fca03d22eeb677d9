package types

import "github.com/shopspring/decimal"

// Account is a per-currency balance from /user/accounts.
type Account struct {
	CurrencyName string          `json:"currencyName"`
	Balance      decimal.Decimal `json:"balance"`
	Locked       decimal.Decimal `json:"lockedBalance"`
}

// Available returns the balance not locked in open orders.
func (a Account) Available() decimal.Decimal {
	return a.Balance.Sub(a.Locked)
}
