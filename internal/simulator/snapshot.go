package simulator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
)

// Position is one portfolio row valued at the current market price.
type Position struct {
	Symbol string
	Shares int64
	Price  decimal.Decimal
	Value  decimal.Decimal
}

// Snapshot is a consistent, copy-only view of the simulator state.
type Snapshot struct {
	Tick              uint64
	TakenAt           time.Time
	Quotes            []market.Quote
	Summary           market.Summary
	Positions         []Position
	Cash              decimal.Decimal
	InitialCash       decimal.Decimal
	PortfolioValue    decimal.Decimal
	NetWorth          decimal.Decimal
	ProfitLoss        decimal.Decimal
	ProfitLossPercent decimal.Decimal
}

// Snapshot copies quotes, summary, positions and cash under one lock, so
// every field reflects the same tick.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Quotes returns the market table in seed order.
func (s *Simulator) Quotes() []market.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.market.Quotes()
}

// Quote returns the current quote for one symbol.
func (s *Simulator) Quote(symbol string) (market.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inst, err := s.market.Lookup(symbol)
	if err != nil {
		return market.Quote{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return market.Quote{
		Symbol:        inst.Symbol(),
		Price:         inst.Price(),
		PreviousClose: inst.PreviousClose(),
		ChangePercent: inst.ChangePercent(),
		High:          inst.High(),
		Low:           inst.Low(),
	}, nil
}

// Positions returns held symbols valued at the current price, in order of
// first purchase.
func (s *Simulator) Positions() []Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos, _ := s.positionsLocked()
	return pos
}

// Cash returns the uninvested balance.
func (s *Simulator) Cash() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cash
}

// PortfolioValue is recomputed from live prices on every call.
func (s *Simulator) PortfolioValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, total := s.positionsLocked()
	return total
}

// SharesOf returns the shares held for symbol, 0 when none.
func (s *Simulator) SharesOf(symbol string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.SharesOf(symbol)
}

// History returns executed trades, oldest first.
func (s *Simulator) History() []models.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trade(nil), s.history...)
}

func (s *Simulator) positionsLocked() ([]Position, decimal.Decimal) {
	holdings := s.portfolio.Holdings()
	out := make([]Position, 0, len(holdings))
	total := decimal.Zero
	for _, h := range holdings {
		inst, err := s.market.Lookup(h.Symbol)
		if err != nil {
			// holdings only ever reference listed symbols
			continue
		}
		value := inst.Price().Mul(decimal.NewFromInt(h.Shares))
		total = total.Add(value)
		out = append(out, Position{
			Symbol: h.Symbol,
			Shares: h.Shares,
			Price:  inst.Price(),
			Value:  value,
		})
	}
	return out, total
}

func (s *Simulator) snapshotLocked() Snapshot {
	positions, value := s.positionsLocked()
	netWorth := s.cash.Add(value)
	pl := netWorth.Sub(s.initialCash)
	plPct := decimal.Zero
	if !s.initialCash.IsZero() {
		plPct = market.ChangePercent(netWorth, s.initialCash)
	}
	return Snapshot{
		Tick:              s.ticks,
		TakenAt:           s.now().UTC(),
		Quotes:            s.market.Quotes(),
		Summary:           s.market.Summary(),
		Positions:         positions,
		Cash:              s.cash,
		InitialCash:       s.initialCash,
		PortfolioValue:    value,
		NetWorth:          netWorth,
		ProfitLoss:        pl,
		ProfitLossPercent: plPct,
	}
}
