package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
)

// DefaultTickInterval is the default market cadence.
const DefaultTickInterval = 2 * time.Second

// Run ticks the simulator every interval until ctx is cancelled.
// It always returns a non-nil error: ctx.Err() on a normal stop.
func (s *Simulator) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}
	log := logger.Component("ticker")
	log.Info().Dur("interval", interval).Msg("market simulation started")

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("market simulation stopped")
			return ctx.Err()
		case <-t.C:
			s.Tick()
			if e := log.Debug(); e.Enabled() {
				snap := s.Snapshot()
				e.Uint64("tick", snap.Tick).
					Int("gainers", snap.Summary.Gainers).
					Int("losers", snap.Summary.Losers).
					Str("net_worth", snap.NetWorth.StringFixed(2)).
					Msg("tick")
			}
		}
	}
}
