// Package console is the interactive terminal front end: it redraws the
// market and the portfolio on every tick and executes typed commands.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/dto"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/service"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
)

const prompt = "> "

const helpText = `Commands:
  buy SYMBOL QTY    buy QTY shares at the current price
  sell SYMBOL QTY   sell QTY shares at the current price
  market            show the market
  portfolio         show the portfolio
  history           show executed trades
  help              show this help
  quit              leave the simulator
`

// Console reads commands from in and writes rendered views to out.
// Writes are serialised so tick redraws never interleave with command output.
type Console struct {
	svc      service.TradingService
	in       io.Reader
	out      io.Writer
	render   Renderer
	currency string
	log      zerolog.Logger

	mu sync.Mutex
}

// New builds a console; a nil render prints plain markdown.
func New(svc service.TradingService, in io.Reader, out io.Writer, render Renderer, currency string) *Console {
	if render == nil {
		render = PlainRenderer{}
	}
	return &Console{
		svc:      svc,
		in:       in,
		out:      out,
		render:   render,
		currency: currency,
		log:      logger.Component("console"),
	}
}

// OnTick redraws the market and the portfolio; pass it to
// Simulator.Subscribe.
func (c *Console) OnTick(s simulator.Snapshot) {
	c.show(s)
}

// Run prints the help and the current state, then executes one command per
// input line. It returns nil on "quit" or end of input and ctx.Err() when
// the context is cancelled first.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.write(helpText)
	c.show(c.svc.Snapshot(ctx))

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if quit := c.Execute(ctx, line); quit {
				c.write("bye\n")
				return nil
			}
		}
	}
}

// Execute runs a single command line and reports whether it was "quit".
func (c *Console) Execute(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		c.write(prompt)
		return false
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		c.write(helpText)
	case "market":
		c.showView("market", dto.NewMarketResponse(c.svc.Snapshot(ctx), c.currency))
	case "portfolio":
		c.showView("portfolio", dto.NewPortfolioResponse(c.svc.Snapshot(ctx), c.currency))
	case "history":
		c.showView("history", dto.NewTradesResponse(c.svc.History(ctx), c.currency))
	case "buy", "sell":
		if len(fields) != 3 {
			c.write(fmt.Sprintf("usage: %s SYMBOL QTY\n", cmd))
			return false
		}
		c.trade(ctx, cmd, fields[1], fields[2])
	default:
		c.write(fmt.Sprintf("unknown command %q, type help\n", fields[0]))
	}
	return false
}

func (c *Console) trade(ctx context.Context, cmd, symbol, qty string) {
	exec := c.svc.Buy
	if cmd == "sell" {
		exec = c.svc.Sell
	}
	tr, err := exec(ctx, symbol, qty)
	if err != nil {
		c.write(describe(err, symbol, qty) + "\n")
		return
	}
	verb := "Bought"
	if cmd == "sell" {
		verb = "Sold"
	}
	c.write(fmt.Sprintf("%s %d %s at %s, total %s. Cash %s.\n",
		verb, tr.Quantity, tr.Symbol,
		dto.DisplayMoney(tr.Price, c.currency),
		dto.DisplayMoney(tr.Total, c.currency),
		dto.DisplayMoney(tr.CashAfter, c.currency)))
}

func describe(err error, symbol, qty string) string {
	switch {
	case errors.Is(err, simulator.ErrUnknownSymbol):
		return fmt.Sprintf("Unknown symbol %s.", service.NormalizeSymbol(symbol))
	case errors.Is(err, simulator.ErrInvalidQuantity):
		return fmt.Sprintf("Invalid quantity %q: enter a whole number greater than zero.", qty)
	case errors.Is(err, simulator.ErrInsufficientFunds):
		return "Insufficient funds."
	case errors.Is(err, simulator.ErrInsufficientShares):
		return "Insufficient shares."
	default:
		return "Trade failed: " + err.Error()
	}
}

func (c *Console) show(s simulator.Snapshot) {
	c.showView("market", dto.NewMarketResponse(s, c.currency))
	c.showView("portfolio", dto.NewPortfolioResponse(s, c.currency))
	c.write(prompt)
}

func (c *Console) showView(name string, view any) {
	md, err := renderMarkdown(name, view)
	if err == nil {
		md, err = c.render.Render(md)
	}
	if err != nil {
		c.log.Error().Err(err).Str("view", name).Msg("render failed")
		return
	}
	c.write(md + "\n")
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.out, s); err != nil {
		c.log.Warn().Err(err).Msg("console write failed")
	}
}
