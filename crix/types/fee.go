package types

import "github.com/shopspring/decimal"

// VolumeFee is one tier of the volume-based fee schedule from
// /info/fee/volume. Tiers arrive unsorted.
type VolumeFee struct {
	Volume   decimal.Decimal `json:"volume"`
	MakerFee decimal.Decimal `json:"makerFee"`
	TakerFee decimal.Decimal `json:"takerFee"`
}
