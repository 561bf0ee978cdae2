// Package simulator is the transaction engine: it owns the market, the
// portfolio and the cash balance, validates trades and advances prices.
package simulator

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/portfolio"
)

// Config carries everything needed to build a Simulator.
type Config struct {
	Seeds       []market.Seed
	InitialCash decimal.Decimal
	// Random drives the price walk; nil means a clock-seeded source.
	Random market.RandomSource
	// Clock stamps executed trades; nil means time.Now.
	Clock func() time.Time
}

// Simulator serialises every operation behind one mutex, so ticks and trades
// never interleave regardless of how many goroutines call in.
type Simulator struct {
	mu          sync.Mutex
	market      *market.Market
	portfolio   *portfolio.Portfolio
	cash        decimal.Decimal
	initialCash decimal.Decimal
	history     []models.Trade
	ticks       uint64

	subMu       sync.Mutex
	subscribers map[int]func(Snapshot)
	nextSubID   int

	now   func() time.Time
	newID func() string
}

// New builds a simulator with an empty portfolio and cfg.InitialCash.
//
// Returns:
//   - ErrInvalidCash when the initial cash is negative.
//   - ErrDuplicateSymbol or market.ErrInvalidSeed for a bad seed list.
func New(cfg Config) (*Simulator, error) {
	if cfg.InitialCash.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCash, cfg.InitialCash)
	}
	m, err := market.New(cfg.Seeds, cfg.Random)
	if err != nil {
		return nil, err
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Simulator{
		market:      m,
		portfolio:   portfolio.New(),
		cash:        cfg.InitialCash,
		initialCash: cfg.InitialCash,
		subscribers: make(map[int]func(Snapshot)),
		now:         now,
		newID:       uuid.NewString,
	}, nil
}

// Tick advances every instrument once and notifies subscribers.
func (s *Simulator) Tick() {
	s.mu.Lock()
	s.market.AdvanceAll()
	s.ticks++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ExecuteBuy buys quantity shares of symbol at the current price.
func (s *Simulator) ExecuteBuy(symbol string, quantity int64) (models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, err := s.market.Lookup(symbol)
	if err != nil {
		return models.Trade{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	if quantity <= 0 {
		return models.Trade{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	price := inst.Price()
	total := price.Mul(decimal.NewFromInt(quantity))
	if total.GreaterThan(s.cash) {
		return models.Trade{}, fmt.Errorf("%w: need %s, have %s", ErrInsufficientFunds, total, s.cash)
	}
	if err := s.portfolio.Buy(symbol, quantity); err != nil {
		return models.Trade{}, err
	}
	s.cash = s.cash.Sub(total)

	return s.record(symbol, models.SideBuy, quantity, price, total), nil
}

// ExecuteSell sells quantity shares of symbol at the current price.
func (s *Simulator) ExecuteSell(symbol string, quantity int64) (models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, err := s.market.Lookup(symbol)
	if err != nil {
		return models.Trade{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	if quantity <= 0 {
		return models.Trade{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if err := s.portfolio.Sell(symbol, quantity); err != nil {
		return models.Trade{}, err
	}

	price := inst.Price()
	total := price.Mul(decimal.NewFromInt(quantity))
	s.cash = s.cash.Add(total)

	return s.record(symbol, models.SideSell, quantity, price, total), nil
}

func (s *Simulator) record(symbol string, side models.Side, qty int64, price, total decimal.Decimal) models.Trade {
	tr := models.Trade{
		ID:         s.newID(),
		Symbol:     symbol,
		Side:       side,
		Quantity:   qty,
		Price:      price,
		Total:      total,
		CashAfter:  s.cash,
		ExecutedAt: s.now().UTC(),
	}
	s.history = append(s.history, tr)
	return tr
}

// Subscribe registers fn to receive a snapshot after every tick.
// The returned func removes the subscription.
func (s *Simulator) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Simulator) notify(snap Snapshot) {
	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
