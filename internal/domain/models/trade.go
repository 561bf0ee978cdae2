package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an executed trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Trade is one executed buy or sell against the simulated market.
//
// Fields:
//   - ID: unique trade identifier (UUID v4).
//   - Symbol: instrument symbol (e.g., "AAPL").
//   - Side: BUY or SELL.
//   - Quantity: number of shares, always positive.
//   - Price: instrument price at execution, used for both the funds check and the ledger.
//   - Total: Quantity * Price.
//   - CashAfter: cash balance once the trade was applied.
//   - ExecutedAt: wall-clock time of execution (UTC).
type Trade struct {
	ID         string          `json:"id"`
	Symbol     string          `json:"symbol"`
	Side       Side            `json:"side"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
	CashAfter  decimal.Decimal `json:"cash_after"`
	ExecutedAt time.Time       `json:"executed_at"`
}

// CashDelta is the signed change this trade applied to cash.
func (t Trade) CashDelta() decimal.Decimal {
	if t.Side == SideBuy {
		return t.Total.Neg()
	}
	return t.Total
}
