package dto

import "github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"

// PositionResponse is one holding valued at the current price.
type PositionResponse struct {
	Symbol string `json:"symbol" example:"AAPL"`
	Shares int64  `json:"shares" example:"10"`
	Price  Amount `json:"price"`
	Value  Amount `json:"value"`
}

// PortfolioResponse is the JSON body of GET /api/v1/portfolio.
type PortfolioResponse struct {
	Currency          string             `json:"currency" example:"USD"`
	Cash              Amount             `json:"cash"`
	InitialCash       Amount             `json:"initial_cash"`
	PortfolioValue    Amount             `json:"portfolio_value"`
	NetWorth          Amount             `json:"net_worth"`
	ProfitLoss        Amount             `json:"profit_loss"`
	ProfitLossPercent string             `json:"profit_loss_percent" example:"1.25"`
	Positions         []PositionResponse `json:"positions"`
}

// NewPortfolioResponse builds the portfolio body from a snapshot.
func NewPortfolioResponse(s simulator.Snapshot, currency string) PortfolioResponse {
	positions := make([]PositionResponse, 0, len(s.Positions))
	for _, p := range s.Positions {
		positions = append(positions, PositionResponse{
			Symbol: p.Symbol,
			Shares: p.Shares,
			Price:  NewAmount(p.Price, currency),
			Value:  NewAmount(p.Value, currency),
		})
	}
	return PortfolioResponse{
		Currency:          currency,
		Cash:              NewAmount(s.Cash, currency),
		InitialCash:       NewAmount(s.InitialCash, currency),
		PortfolioValue:    NewAmount(s.PortfolioValue, currency),
		NetWorth:          NewAmount(s.NetWorth, currency),
		ProfitLoss:        NewAmount(s.ProfitLoss, currency),
		ProfitLossPercent: s.ProfitLossPercent.StringFixed(2),
		Positions:         positions,
	}
}
