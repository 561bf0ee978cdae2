package dto

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayMoney renders amount in currency with its symbol and grouping,
// e.g. "$1,505.00". Unknown currency codes fall back to a plain fixed
// two-place string.
func DisplayMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// Amount is a money value in both machine and human form.
type Amount struct {
	Value   string `json:"value" example:"1505.00"`
	Display string `json:"display" example:"$1,505.00"`
}

// NewAmount pairs the fixed two-place value with its display string.
func NewAmount(v decimal.Decimal, currency string) Amount {
	return Amount{Value: v.StringFixed(2), Display: DisplayMoney(v, currency)}
}
