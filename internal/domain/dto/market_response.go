package dto

import (
	"time"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
)

// QuoteResponse is one row of GET /api/v1/market.
type QuoteResponse struct {
	Symbol        string `json:"symbol" example:"AAPL"`
	Price         Amount `json:"price"`
	PreviousClose string `json:"previous_close" example:"150.50"`
	ChangePercent string `json:"change_percent" example:"0.50"`
	High          string `json:"high" example:"151.25"`
	Low           string `json:"low" example:"149.80"`
}

// SummaryResponse counts movers since the market opened.
type SummaryResponse struct {
	Gainers    int    `json:"gainers" example:"5"`
	Losers     int    `json:"losers" example:"2"`
	Unchanged  int    `json:"unchanged" example:"1"`
	TotalValue Amount `json:"total_value"`
}

// MarketResponse is the JSON body of GET /api/v1/market.
type MarketResponse struct {
	Tick     uint64          `json:"tick" example:"42"`
	AsOf     time.Time       `json:"as_of"`
	Currency string          `json:"currency" example:"USD"`
	Quotes   []QuoteResponse `json:"quotes"`
	Summary  SummaryResponse `json:"summary"`
}

// NewQuoteResponse formats one quote; prices keep two decimal places.
func NewQuoteResponse(q market.Quote, currency string) QuoteResponse {
	return QuoteResponse{
		Symbol:        q.Symbol,
		Price:         NewAmount(q.Price, currency),
		PreviousClose: q.PreviousClose.StringFixed(2),
		ChangePercent: q.ChangePercent.StringFixed(2),
		High:          q.High.StringFixed(2),
		Low:           q.Low.StringFixed(2),
	}
}

// NewMarketResponse builds the market body from a snapshot.
func NewMarketResponse(s simulator.Snapshot, currency string) MarketResponse {
	quotes := make([]QuoteResponse, 0, len(s.Quotes))
	for _, q := range s.Quotes {
		quotes = append(quotes, NewQuoteResponse(q, currency))
	}
	return MarketResponse{
		Tick:     s.Tick,
		AsOf:     s.TakenAt,
		Currency: currency,
		Quotes:   quotes,
		Summary: SummaryResponse{
			Gainers:    s.Summary.Gainers,
			Losers:     s.Summary.Losers,
			Unchanged:  s.Summary.Unchanged,
			TotalValue: NewAmount(s.Summary.TotalValue, currency),
		},
	}
}
