// Package ingestion loads the seed instrument list the market starts from.
package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
)

// DefaultSeedList is the stock eight-instrument market.
const DefaultSeedList = "AAPL=150.50,GOOGL=2750.25,MSFT=285.75,AMZN=3300.00,TSLA=850.25,META=330.50,NFLX=450.75,NVDA=420.25"

// LoadSeeds returns the seed list from path when set, otherwise from the
// inline list. An empty result is an error: a market needs instruments.
func LoadSeeds(ctx context.Context, inline, path string) ([]market.Seed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		seeds  []market.Seed
		err    error
		source = "inline"
	)
	if path != "" {
		source = path
		seeds, err = loadSeedFile(path)
	} else {
		seeds, err = ParseSeedList(inline)
	}
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", source, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("seed %s: %w: no instruments", source, ErrMalformedSeed)
	}

	logger.L().Info().Str("source", source).Int("instruments", len(seeds)).Msg("seed list loaded")
	return seeds, nil
}

func loadSeedFile(path string) ([]market.Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parseSeedFile(f)
}
