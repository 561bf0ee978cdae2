package market

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// fixedSource replays the given draws in a loop.
type fixedSource struct {
	vals []float64
	i    int
}

func (f *fixedSource) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func seeds(pairs ...string) []Seed {
	out := make([]Seed, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Seed{Symbol: pairs[i], Price: decimal.RequireFromString(pairs[i+1])})
	}
	return out
}

func TestNew_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		seeds   []Seed
		wantErr error
		wantLen int
	}{
		{name: "ok", seeds: seeds("AAPL", "150.50", "MSFT", "285.75"), wantLen: 2},
		{name: "empty", seeds: nil, wantLen: 0},
		{name: "duplicate", seeds: seeds("AAPL", "150.50", "AAPL", "10"), wantErr: ErrDuplicateSymbol},
		{name: "blank symbol", seeds: seeds(" ", "1"), wantErr: ErrInvalidSeed},
		{name: "zero price", seeds: seeds("X", "0"), wantErr: ErrInvalidSeed},
		{name: "sub-cent price", seeds: seeds("AAPL", "150.505"), wantErr: ErrInvalidSeed},
		{name: "trailing zero places", seeds: seeds("AAPL", "150.500"), wantLen: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.seeds, &fixedSource{vals: []float64{0.5}})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err=%v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Len() != tc.wantLen {
				t.Fatalf("len=%d, want %d", m.Len(), tc.wantLen)
			}
		})
	}
}

func TestNew_KeepsSeedPriceExact(t *testing.T) {
	m, err := New(seeds("AAPL", "150.500"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	inst, err := m.Lookup("AAPL")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !inst.Price().Equal(decimal.RequireFromString("150.50")) || !inst.PreviousClose().Equal(inst.Price()) {
		t.Fatalf("price=%s previous_close=%s", inst.Price(), inst.PreviousClose())
	}
}

func TestQuotes_KeepSeedOrder(t *testing.T) {
	m, err := New(seeds("TSLA", "850.25", "AAPL", "150.50", "NVDA", "420.25"), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := []string{"TSLA", "AAPL", "NVDA"}
	for i, q := range m.Quotes() {
		if q.Symbol != want[i] {
			t.Fatalf("quote %d = %s, want %s", i, q.Symbol, want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	m, _ := New(seeds("AAPL", "150.50"), nil)
	inst, err := m.Lookup("AAPL")
	if err != nil || !inst.Price().Equal(decimal.RequireFromString("150.50")) {
		t.Fatalf("lookup AAPL: inst=%v err=%v", inst, err)
	}
	if _, err := m.Lookup("MSFT"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("lookup MSFT err=%v, want ErrNotFound", err)
	}
}

func TestAdvance_Formula(t *testing.T) {
	// draws 0.75 and 0.25: movement = 0.5*0.02 = 0.01, sentiment = -0.25*0.01 = -0.0025
	m, _ := New(seeds("AAPL", "100.00"), &fixedSource{vals: []float64{0.75, 0.25}})
	m.AdvanceAll()

	inst, _ := m.Lookup("AAPL")
	want := decimal.RequireFromString("100.75")
	if !inst.Price().Equal(want) {
		t.Fatalf("price=%s, want %s", inst.Price(), want)
	}
	if !inst.ChangePercent().Equal(decimal.RequireFromString("0.75")) {
		t.Fatalf("change=%s, want 0.75", inst.ChangePercent())
	}
	if !inst.PreviousClose().Equal(decimal.RequireFromString("100")) {
		t.Fatalf("previous close moved to %s", inst.PreviousClose())
	}
}

func TestAdvance_FloorAtMinPrice(t *testing.T) {
	// lowest possible draws on a penny stock
	m, _ := New(seeds("PENNY", "0.01"), &fixedSource{vals: []float64{0}})
	for i := 0; i < 50; i++ {
		m.AdvanceAll()
	}
	inst, _ := m.Lookup("PENNY")
	if !inst.Price().Equal(MinPrice) {
		t.Fatalf("price=%s, want %s", inst.Price(), MinPrice)
	}
	if !inst.Low().Equal(MinPrice) {
		t.Fatalf("low=%s, want %s", inst.Low(), MinPrice)
	}
}

func TestAdvance_Invariants(t *testing.T) {
	m, _ := New(seeds("AAPL", "150.50", "GOOGL", "2750.25", "PENNY", "0.02"), NewRandomSource(42))
	for n := 0; n < 2000; n++ {
		m.AdvanceAll()
		for _, q := range m.Quotes() {
			if q.Price.LessThan(MinPrice) {
				t.Fatalf("%s price %s below floor after %d ticks", q.Symbol, q.Price, n)
			}
			if !q.ChangePercent.Equal(ChangePercent(q.Price, q.PreviousClose)) {
				t.Fatalf("%s change %s out of sync", q.Symbol, q.ChangePercent)
			}
			if q.High.LessThan(q.Price) || q.Low.GreaterThan(q.Price) {
				t.Fatalf("%s price %s outside [%s, %s]", q.Symbol, q.Price, q.Low, q.High)
			}
			if q.Price.Exponent() < -2 {
				t.Fatalf("%s price %s has more than 2 decimals", q.Symbol, q.Price)
			}
		}
	}
}

func TestAdvance_DeterministicUnderSeed(t *testing.T) {
	a, _ := New(seeds("AAPL", "150.50", "MSFT", "285.75"), NewRandomSource(7))
	b, _ := New(seeds("AAPL", "150.50", "MSFT", "285.75"), NewRandomSource(7))
	for i := 0; i < 100; i++ {
		a.AdvanceAll()
		b.AdvanceAll()
	}
	qa, qb := a.Quotes(), b.Quotes()
	for i := range qa {
		if !qa[i].Price.Equal(qb[i].Price) {
			t.Fatalf("%s diverged: %s vs %s", qa[i].Symbol, qa[i].Price, qb[i].Price)
		}
	}
}

func TestSummary(t *testing.T) {
	// top draws for the first instrument, bottom draws for the second
	m, _ := New(seeds("UP", "100", "DOWN", "100"), &fixedSource{vals: []float64{1, 1, 0, 0}})
	m.AdvanceAll()
	s := m.Summary()
	if s.Gainers != 1 || s.Losers != 1 || s.Unchanged != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	up, _ := m.Lookup("UP")
	down, _ := m.Lookup("DOWN")
	if !s.TotalValue.Equal(up.Price().Add(down.Price())) {
		t.Fatalf("total=%s", s.TotalValue)
	}
}

func TestChangePercent_ZeroReference(t *testing.T) {
	if got := ChangePercent(decimal.NewFromInt(5), decimal.Zero); !got.IsZero() {
		t.Fatalf("got %s, want 0", got)
	}
}
