package market

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateSymbol = errors.New("duplicate symbol in seed list")
	ErrInvalidSeed     = errors.New("invalid seed entry")
	ErrNotFound        = errors.New("symbol not found")
)

// Seed is one (symbol, opening price) pair used to build a Market.
type Seed struct {
	Symbol string
	Price  decimal.Decimal
}

// Quote is a read-only view of one instrument.
type Quote struct {
	Symbol        string
	Price         decimal.Decimal
	PreviousClose decimal.Decimal
	ChangePercent decimal.Decimal
	High          decimal.Decimal
	Low           decimal.Decimal
}

// Summary aggregates the market at a point in time.
type Summary struct {
	Gainers    int
	Losers     int
	Unchanged  int
	TotalValue decimal.Decimal
}

// Market owns a fixed, ordered set of instruments.
type Market struct {
	order       []string
	instruments map[string]*Instrument
	rnd         RandomSource
}

// New builds a market from seeds, keeping their order.
//
// Behavior:
//   - Symbols are trimmed; a blank symbol is ErrInvalidSeed.
//   - Prices below MinPrice or with more than two decimal places are
//     ErrInvalidSeed.
//   - A repeated symbol is ErrDuplicateSymbol.
//   - A nil rnd is replaced by a clock-seeded source.
func New(seeds []Seed, rnd RandomSource) (*Market, error) {
	if rnd == nil {
		rnd = NewRandomSource(0)
	}
	m := &Market{
		order:       make([]string, 0, len(seeds)),
		instruments: make(map[string]*Instrument, len(seeds)),
		rnd:         rnd,
	}
	for _, s := range seeds {
		sym := strings.TrimSpace(s.Symbol)
		if sym == "" {
			return nil, fmt.Errorf("%w: empty symbol", ErrInvalidSeed)
		}
		if s.Price.LessThan(MinPrice) {
			return nil, fmt.Errorf("%w: %s price %s below %s", ErrInvalidSeed, sym, s.Price, MinPrice)
		}
		if !s.Price.Equal(s.Price.Round(pricePlaces)) {
			return nil, fmt.Errorf("%w: %s price %s has more than %d decimal places", ErrInvalidSeed, sym, s.Price, pricePlaces)
		}
		if _, ok := m.instruments[sym]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, sym)
		}
		m.instruments[sym] = newInstrument(sym, s.Price)
		m.order = append(m.order, sym)
	}
	return m, nil
}

// AdvanceAll runs one random-walk step on every instrument.
func (m *Market) AdvanceAll() {
	for _, sym := range m.order {
		m.instruments[sym].Advance(m.rnd)
	}
}

// Lookup returns the instrument for symbol.
func (m *Market) Lookup(symbol string) (*Instrument, error) {
	inst, ok := m.instruments[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return inst, nil
}

// Len returns the number of listed instruments.
func (m *Market) Len() int { return len(m.order) }

// Quotes returns every instrument in seed order.
func (m *Market) Quotes() []Quote {
	out := make([]Quote, 0, len(m.order))
	for _, sym := range m.order {
		inst := m.instruments[sym]
		out = append(out, Quote{
			Symbol:        inst.symbol,
			Price:         inst.price,
			PreviousClose: inst.previousClose,
			ChangePercent: inst.changePercent,
			High:          inst.high,
			Low:           inst.low,
		})
	}
	return out
}

// Summary counts gainers, losers and unchanged instruments against their
// opening price and sums the current prices into TotalValue.
func (m *Market) Summary() Summary {
	s := Summary{TotalValue: decimal.Zero}
	for _, sym := range m.order {
		inst := m.instruments[sym]
		s.TotalValue = s.TotalValue.Add(inst.price)
		switch inst.changePercent.Sign() {
		case 1:
			s.Gainers++
		case -1:
			s.Losers++
		default:
			s.Unchanged++
		}
	}
	return s
}
