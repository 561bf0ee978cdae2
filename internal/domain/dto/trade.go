package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
)

// TradeRequest is the body of POST /api/v1/trades/buy and /sell.
// Quantity accepts either a JSON string ("10") or a JSON number (10).
type TradeRequest struct {
	Symbol   string          `json:"symbol" binding:"required" example:"AAPL"`
	Quantity json.RawMessage `json:"quantity" binding:"required" swaggertype:"string" example:"10"`
}

var errMissingQuantity = errors.New("quantity is required")

// QuantityText returns the quantity as the text a user would have typed.
//
// Behavior:
//   - JSON strings are unquoted as is.
//   - Numbers with a zero fraction (10.0, 1e1) become plain integers ("10").
//   - Any other value (1.5, true, null) is returned as its literal, so the
//     trade is rejected as an invalid quantity after the symbol is checked.
func (r TradeRequest) QuantityText() (string, error) {
	raw := bytes.TrimSpace(r.Quantity)
	if len(raw) == 0 {
		return "", errMissingQuantity
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if d, err := decimal.NewFromString(string(raw)); err == nil && d.IsInteger() {
			return d.String(), nil
		}
	}
	return string(raw), nil
}

// TradeResponse describes one executed trade.
type TradeResponse struct {
	ID         string    `json:"id" example:"3f1c2a1e-8f3a-4f0e-9d61-2b0a4b7d9e10"`
	Symbol     string    `json:"symbol" example:"AAPL"`
	Side       string    `json:"side" example:"BUY"`
	Quantity   int64     `json:"quantity" example:"10"`
	Price      Amount    `json:"price"`
	Total      Amount    `json:"total"`
	CashAfter  Amount    `json:"cash_after"`
	ExecutedAt time.Time `json:"executed_at"`
}

// TradesResponse wraps a list of trades.
type TradesResponse struct {
	Count  int             `json:"count" example:"1"`
	Trades []TradeResponse `json:"trades"`
}

// NewTradeResponse converts a trade for the API.
func NewTradeResponse(t models.Trade, currency string) TradeResponse {
	return TradeResponse{
		ID:         t.ID,
		Symbol:     t.Symbol,
		Side:       string(t.Side),
		Quantity:   t.Quantity,
		Price:      NewAmount(t.Price, currency),
		Total:      NewAmount(t.Total, currency),
		CashAfter:  NewAmount(t.CashAfter, currency),
		ExecutedAt: t.ExecutedAt,
	}
}

// NewTradesResponse keeps the input order; an empty list encodes as [].
func NewTradesResponse(trades []models.Trade, currency string) TradesResponse {
	out := make([]TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, NewTradeResponse(t, currency))
	}
	return TradesResponse{Count: len(out), Trades: out}
}
