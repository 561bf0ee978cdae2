package market

import (
	"github.com/shopspring/decimal"
)

const (
	volatility       = 0.02
	sentimentSpread  = 0.01
	pricePlaces      = 2
	percentPrecision = 16
)

var (
	// MinPrice is the floor every price update is clamped to.
	MinPrice = decimal.RequireFromString("0.01")

	hundred = decimal.NewFromInt(100)
)

// Instrument is the mutable price state of one tradable symbol.
//
// PreviousClose is the opening reference for the whole session; ChangePercent
// is always measured against it, never against the prior tick.
type Instrument struct {
	symbol        string
	price         decimal.Decimal
	previousClose decimal.Decimal
	changePercent decimal.Decimal
	high          decimal.Decimal
	low           decimal.Decimal
}

func newInstrument(symbol string, price decimal.Decimal) *Instrument {
	p := price.Round(pricePlaces)
	return &Instrument{
		symbol:        symbol,
		price:         p,
		previousClose: p,
		changePercent: decimal.Zero,
		high:          p,
		low:           p,
	}
}

// Symbol returns the ticker the instrument is listed under.
func (i *Instrument) Symbol() string { return i.symbol }

// Price returns the current price, never below MinPrice.
func (i *Instrument) Price() decimal.Decimal { return i.price }

// PreviousClose returns the opening price of the session.
func (i *Instrument) PreviousClose() decimal.Decimal { return i.previousClose }

// ChangePercent returns the move since the opening price, in percent.
func (i *Instrument) ChangePercent() decimal.Decimal { return i.changePercent }

// High returns the highest price seen this session.
func (i *Instrument) High() decimal.Decimal { return i.high }

// Low returns the lowest price seen this session.
func (i *Instrument) Low() decimal.Decimal { return i.low }

// Advance moves the price one step along the random walk.
func (i *Instrument) Advance(rnd RandomSource) {
	movement := uniform(rnd, -1, 1) * volatility
	sentiment := uniform(rnd, -0.5, 0.5) * sentimentSpread
	factor := decimal.NewFromFloat(1 + movement + sentiment)

	next := i.price.Mul(factor).Round(pricePlaces)
	if next.LessThan(MinPrice) {
		next = MinPrice
	}
	i.setPrice(next)
}

func (i *Instrument) setPrice(p decimal.Decimal) {
	if p.GreaterThan(i.high) {
		i.high = p
	}
	if p.LessThan(i.low) {
		i.low = p
	}
	i.price = p
	i.changePercent = ChangePercent(p, i.previousClose)
}

// ChangePercent returns (price - reference) / reference * 100.
func ChangePercent(price, reference decimal.Decimal) decimal.Decimal {
	if reference.IsZero() {
		return decimal.Zero
	}
	return price.Sub(reference).DivRound(reference, percentPrecision).Mul(hundred)
}
