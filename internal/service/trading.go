package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/storage"
)

// TradingService is the single entry point used by the HTTP API and the
// console. It parses raw user input, delegates to the simulator and writes
// every executed trade to the journal.
type TradingService interface {
	Snapshot(ctx context.Context) simulator.Snapshot
	Buy(ctx context.Context, symbol, quantity string) (models.Trade, error)
	Sell(ctx context.Context, symbol, quantity string) (models.Trade, error)
	// History returns the session's trades, oldest first.
	History(ctx context.Context) []models.Trade
	// Journal returns up to limit journaled trades, newest first.
	Journal(ctx context.Context, limit int) ([]models.Trade, error)
	Ready(ctx context.Context) error
	// Subscribe registers fn for a snapshot after every tick.
	Subscribe(fn func(simulator.Snapshot)) (unsubscribe func())
}

type tradingService struct {
	sim     *simulator.Simulator
	journal storage.TradeJournal
	log     zerolog.Logger
}

// NewTradingService returns a TradingService over sim that journals every
// executed trade.
func NewTradingService(sim *simulator.Simulator, journal storage.TradeJournal) TradingService {
	return &tradingService{sim: sim, journal: journal, log: logger.Component("trading")}
}

func (s *tradingService) Snapshot(_ context.Context) simulator.Snapshot {
	return s.sim.Snapshot()
}

func (s *tradingService) Buy(ctx context.Context, symbol, quantity string) (models.Trade, error) {
	return s.execute(ctx, models.SideBuy, symbol, quantity, s.sim.ExecuteBuy)
}

func (s *tradingService) Sell(ctx context.Context, symbol, quantity string) (models.Trade, error) {
	return s.execute(ctx, models.SideSell, symbol, quantity, s.sim.ExecuteSell)
}

func (s *tradingService) execute(
	ctx context.Context,
	side models.Side,
	symbol, quantity string,
	exec func(string, int64) (models.Trade, error),
) (models.Trade, error) {
	symbol = NormalizeSymbol(symbol)
	qty, err := simulator.ParseQuantity(quantity)
	if err != nil {
		// an unknown symbol is reported ahead of a bad quantity
		if _, qerr := s.sim.Quote(symbol); qerr != nil {
			return models.Trade{}, qerr
		}
		s.log.Debug().Str("side", string(side)).Str("symbol", symbol).Str("quantity", quantity).Msg("rejected quantity")
		return models.Trade{}, err
	}

	tr, err := exec(symbol, qty)
	if err != nil {
		s.log.Info().Err(err).Str("side", string(side)).Str("symbol", symbol).Int64("quantity", qty).Msg("trade rejected")
		return models.Trade{}, err
	}

	s.log.Info().
		Str("trade_id", tr.ID).
		Str("side", string(tr.Side)).
		Str("symbol", tr.Symbol).
		Int64("quantity", tr.Quantity).
		Str("price", tr.Price.StringFixed(2)).
		Str("cash_after", tr.CashAfter.StringFixed(2)).
		Msg("trade executed")

	if err := s.journal.Record(ctx, tr); err != nil {
		s.log.Error().Err(err).Str("trade_id", tr.ID).Msg("journal write failed")
	}
	return tr, nil
}

func (s *tradingService) History(_ context.Context) []models.Trade {
	return s.sim.History()
}

func (s *tradingService) Journal(ctx context.Context, limit int) ([]models.Trade, error) {
	return s.journal.Recent(ctx, limit)
}

func (s *tradingService) Subscribe(fn func(simulator.Snapshot)) func() {
	return s.sim.Subscribe(fn)
}

func (s *tradingService) Ready(ctx context.Context) error {
	return s.journal.Ping(ctx)
}

// NormalizeSymbol trims and upper-cases user supplied ticker text.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
