package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Toy stock market simulator: random-walk prices, a cash-backed portfolio and buy/sell trades.
//  @contact.name    API Support
//  @contact.url     https://github.com/Adikun01000/StockporfolliatrackingSimulator
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Simulated instruments and prices
//
//  @tag.name        portfolio
//  @tag.description Positions, cash and profit/loss
//
//  @tag.name        trades
//  @tag.description Buying, selling and trade history
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/config"
	_ "github.com/Adikun01000/StockporfolliatrackingSimulator/docs" // swagger docs
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/app"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/console"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// options are the command line overrides of config.AppConfig.
type options struct {
	mode  string
	port  string
	tick  time.Duration
	style string
}

// newServer builds the HTTP server with the timeouts used in every mode.
func newServer(router http.Handler, port string) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.L().Info().Str("addr", server.Addr).Msg("server starting")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.L().Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.L().Info().Msg("server exited gracefully")
	return nil
}

// run wires the application and blocks until ctx is cancelled or, in
// console mode, the user quits. The ticker runs in every mode.
func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	a, err := app.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}
	defer a.Cleanup()

	var render console.Renderer = console.PlainRenderer{}
	switch opts.mode {
	case "api":
	case "console":
		if opts.style != "" {
			if render, err = console.NewStyledRenderer(opts.style, 100); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Simulator.Run(ctx, opts.tick)
	})

	if opts.mode == "api" {
		server := newServer(a.Router, opts.port)
		g.Go(func() error { return serve(ctx, server) })
	} else {
		c := console.New(a.Service, in, out, render, config.AppConfig.Simulation.Currency)
		unsubscribe := a.Simulator.Subscribe(c.OnTick)
		defer unsubscribe()
		g.Go(func() error {
			defer cancel()
			return c.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// main is the entry point of the stockpulse simulator.
//
// Modes (selected via --mode flag):
//   - api:     Serves the REST API while the market ticks in the background.
//   - console: Interactive terminal session; tables redraw on every tick.
//
// Flags override SERVER_PORT and TICK_INTERVAL from the environment.
func main() {
	config.LoadConfig()
	logger.Init()

	var opts options
	flag.StringVar(&opts.mode, "mode", "api", "Mode: api or console")
	flag.StringVar(&opts.port, "port", config.AppConfig.Server.Port, "Port for API mode")
	flag.DurationVar(&opts.tick, "tick", config.AppConfig.Simulation.TickInterval, "Interval between market ticks")
	flag.StringVar(&opts.style, "style", "", "Console style (dark, light, notty); empty prints plain markdown")
	flag.Parse()

	if opts.mode == "console" {
		logger.UseConsole(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L().Info().Str("mode", opts.mode).Dur("tick", opts.tick).Msg("starting stockpulse")
	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		logger.L().Fatal().Err(err).Msg("stockpulse stopped")
	}
	logger.L().Info().Msg("stockpulse exited")
}
