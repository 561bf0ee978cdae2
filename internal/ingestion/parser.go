package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
)

// ErrMalformedSeed is returned for any seed entry that cannot be parsed.
var ErrMalformedSeed = errors.New("malformed seed entry")

// expectedHeaders enforces strict column ordering for seed files.
var expectedHeaders = []string{"Symbol", "Price"}

// ParseSeedList parses the inline form "AAPL=150.50,MSFT=285.75".
// Blank entries are skipped; symbols are upper-cased.
func ParseSeedList(s string) ([]market.Seed, error) {
	var out []market.Seed
	for i, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		sym, price, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: entry %d %q: expected SYMBOL=PRICE", ErrMalformedSeed, i+1, entry)
		}
		seed, err := toSeed(sym, price)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		out = append(out, seed)
	}
	return out, nil
}

// parseSeedFile reads a ';' separated seed file.
// It fails on:
//   - header not matching "Symbol;Price" exactly
//   - a row without exactly two columns
//   - an unparsable price
//
// Prices may use either '.' or ',' as decimal separator.
func parseSeedFile(r io.Reader) ([]market.Seed, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // checked explicitly below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return nil, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	var out []market.Seed
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != len(expectedHeaders) {
			return nil, fmt.Errorf("%w: line %d: expected %d columns, got %d", ErrMalformedSeed, line, len(expectedHeaders), len(rec))
		}
		seed, err := toSeed(rec[0], rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, seed)
	}
	return out, nil
}

func toSeed(symbol, price string) (market.Seed, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return market.Seed{}, fmt.Errorf("%w: empty symbol", ErrMalformedSeed)
	}
	p := strings.ReplaceAll(strings.TrimSpace(price), ",", ".")
	v, err := decimal.NewFromString(p)
	if err != nil {
		return market.Seed{}, fmt.Errorf("%w: %s price %q", ErrMalformedSeed, sym, price)
	}
	return market.Seed{Symbol: sym, Price: v}, nil
}
