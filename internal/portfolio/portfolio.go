package portfolio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// Holding is the share count held for one symbol.
type Holding struct {
	Symbol string
	Shares int64
}

// Portfolio tracks share counts per symbol. It knows nothing about money;
// funds are checked by the caller. A symbol with no shares has no entry.
type Portfolio struct {
	order    []string
	holdings map[string]int64
}

// New returns an empty portfolio.
func New() *Portfolio {
	return &Portfolio{holdings: make(map[string]int64)}
}

// Buy adds quantity shares of symbol.
func (p *Portfolio) Buy(symbol string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if _, ok := p.holdings[symbol]; !ok {
		p.order = append(p.order, symbol)
	}
	p.holdings[symbol] += quantity
	return nil
}

// Sell removes quantity shares of symbol, dropping the entry when it reaches zero.
func (p *Portfolio) Sell(symbol string, quantity int64) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	held := p.holdings[symbol]
	if quantity > held {
		return fmt.Errorf("%w: %s holds %d, asked %d", ErrInsufficientShares, symbol, held, quantity)
	}
	if remaining := held - quantity; remaining > 0 {
		p.holdings[symbol] = remaining
		return nil
	}
	delete(p.holdings, symbol)
	for i, s := range p.order {
		if s == symbol {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return nil
}

// SharesOf returns 0 for symbols never bought or fully sold.
func (p *Portfolio) SharesOf(symbol string) int64 {
	return p.holdings[symbol]
}

// Holdings lists positions in order of first acquisition.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.order))
	for _, sym := range p.order {
		out = append(out, Holding{Symbol: sym, Shares: p.holdings[sym]})
	}
	return out
}

// Len returns the number of symbols with shares held.
func (p *Portfolio) Len() int { return len(p.holdings) }
