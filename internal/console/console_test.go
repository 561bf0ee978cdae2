package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/service"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/storage"
)

func newTestConsole(t *testing.T, in io.Reader) (*Console, *simulator.Simulator, *bytes.Buffer) {
	t.Helper()
	sim, err := simulator.New(simulator.Config{
		Seeds: []market.Seed{
			{Symbol: "AAPL", Price: decimal.RequireFromString("150.50")},
			{Symbol: "MSFT", Price: decimal.RequireFromString("285.75")},
		},
		InitialCash: decimal.RequireFromString("10000.00"),
		Random:      market.NewRandomSource(3),
		Clock:       func() time.Time { return time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		t.Fatalf("simulator: %v", err)
	}
	var out bytes.Buffer
	c := New(service.NewTradingService(sim, storage.NewMemoryJournal()), in, &out, nil, "USD")
	return c, sim, &out
}

func TestExecute_Commands(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{name: "buy", line: "buy AAPL 10", want: []string{"Bought 10 AAPL at $150.50, total $1,505.00. Cash $8,495.00."}},
		{name: "lower case", line: "BUY aapl 1", want: []string{"Bought 1 AAPL"}},
		{name: "unknown symbol", line: "buy IBM 1", want: []string{"Unknown symbol IBM."}},
		{name: "bad quantity", line: "buy AAPL ten", want: []string{"Invalid quantity \"ten\""}},
		{name: "too expensive", line: "buy MSFT 100", want: []string{"Insufficient funds."}},
		{name: "oversell", line: "sell AAPL 1", want: []string{"Insufficient shares."}},
		{name: "usage", line: "sell AAPL", want: []string{"usage: sell SYMBOL QTY"}},
		{name: "unknown command", line: "short AAPL 1", want: []string{"unknown command \"short\""}},
		{name: "help", line: "help", want: []string{"Commands:"}},
		{name: "market", line: "market", want: []string{"## Market (tick 0)", "| AAPL | $150.50 | +0.00% |", "Total market value $436.25"}},
		{name: "empty portfolio", line: "portfolio", want: []string{"_No positions._", "Cash **$10,000.00**"}},
		{name: "empty history", line: "history", want: []string{"_No trades yet._"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, out := newTestConsole(t, strings.NewReader(""))
			if quit := c.Execute(context.Background(), tc.line); quit {
				t.Fatalf("unexpected quit")
			}
			for _, w := range tc.want {
				if !strings.Contains(out.String(), w) {
					t.Fatalf("output missing %q:\n%s", w, out.String())
				}
			}
		})
	}
}

func TestExecute_PortfolioAndHistoryAfterTrades(t *testing.T) {
	c, _, out := newTestConsole(t, strings.NewReader(""))
	ctx := context.Background()
	c.Execute(ctx, "buy AAPL 10")
	c.Execute(ctx, "sell AAPL 4")
	out.Reset()

	c.Execute(ctx, "portfolio")
	c.Execute(ctx, "history")
	for _, w := range []string{
		"| AAPL | 6 | $150.50 | $903.00 |",
		"| 10:00:00 | BUY | AAPL | 10 |",
		"| 10:00:00 | SELL | AAPL | 4 |",
	} {
		if !strings.Contains(out.String(), w) {
			t.Fatalf("output missing %q:\n%s", w, out.String())
		}
	}
}

func TestExecute_Quit(t *testing.T) {
	c, _, _ := newTestConsole(t, strings.NewReader(""))
	for _, line := range []string{"quit", "EXIT", "q"} {
		if !c.Execute(context.Background(), line) {
			t.Fatalf("%q should quit", line)
		}
	}
}

func TestRun_ScriptedSession(t *testing.T) {
	in := strings.NewReader("buy AAPL 10\n\nsell AAPL 10\nquit\nbuy AAPL 1\n")
	c, sim, out := newTestConsole(t, in)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sim.Cash().Equal(decimal.RequireFromString("10000.00")) {
		t.Fatalf("cash=%s", sim.Cash())
	}
	if len(sim.History()) != 2 {
		t.Fatalf("commands after quit were executed: %d trades", len(sim.History()))
	}
	if !strings.HasSuffix(out.String(), "bye\n") {
		t.Fatalf("missing goodbye:\n%s", out.String())
	}
}

func TestRun_EndOfInput(t *testing.T) {
	c, _, _ := newTestConsole(t, strings.NewReader("market\n"))
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c, _, _ := newTestConsole(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err=%v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestOnTick_Redraws(t *testing.T) {
	c, sim, _ := newTestConsole(t, strings.NewReader(""))
	var out syncBuffer
	c.out = &out
	unsubscribe := sim.Subscribe(c.OnTick)
	defer unsubscribe()

	sim.Tick()
	sim.Tick()

	got := out.String()
	if !strings.Contains(got, "## Market (tick 1)") || !strings.Contains(got, "## Market (tick 2)") {
		t.Fatalf("ticks not rendered:\n%s", got)
	}
	if strings.Count(got, "## Portfolio") != 2 {
		t.Fatalf("portfolio not redrawn on each tick:\n%s", got)
	}
}

func TestStyledRenderer(t *testing.T) {
	r, err := NewStyledRenderer("notty", 100)
	if err != nil {
		t.Fatalf("NewStyledRenderer: %v", err)
	}
	c, _, out := newTestConsole(t, strings.NewReader(""))
	c.render = r
	c.Execute(context.Background(), "market")
	if !strings.Contains(out.String(), "AAPL") || strings.Contains(out.String(), "|:---|") {
		t.Fatalf("markdown not rendered:\n%s", out.String())
	}
}
