package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/config"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/api"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/ingestion"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/logger"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/market"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/service"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/simulator"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/storage"
)

// App is the wired application: one simulator shared by the HTTP router,
// the console and the ticker.
type App struct {
	Router    *gin.Engine
	Simulator *simulator.Simulator
	Service   service.TradingService
	// Cleanup releases resources such as the journal's DB pool.
	Cleanup func()
}

// InitializeApp builds every dependency from config.AppConfig.
//
// Responsibilities:
//   - Loads the seed instrument list (inline or from file).
//   - Creates the simulator with the configured cash and random seed.
//   - Opens the trade journal (memory, or PostgreSQL with migrations).
//   - Creates the trading service, HTTP handlers and router.
//   - Registers health and readiness probes.
func InitializeApp(ctx context.Context) (*App, error) {
	cfg := config.AppConfig

	seeds, err := ingestion.LoadSeeds(ctx, cfg.Simulation.MarketSeed, cfg.Simulation.MarketSeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load market seed: %w", err)
	}

	sim, err := simulator.New(simulator.Config{
		Seeds:       seeds,
		InitialCash: cfg.Simulation.InitialCash,
		Random:      market.NewRandomSource(cfg.Simulation.RandomSeed),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator: %w", err)
	}

	journal, closeJournal, err := openJournal(cfg)
	if err != nil {
		return nil, err
	}

	svc := service.NewTradingService(sim, journal)

	handler := api.NewHandler(svc, cfg.Simulation.Currency)
	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
	})
	api.NewHealthHandler(svc.Ready).Register(router)

	logger.L().Info().
		Int("instruments", len(seeds)).
		Str("initial_cash", cfg.Simulation.InitialCash.StringFixed(2)).
		Str("journal", cfg.Journal.Driver).
		Msg("application initialized")

	return &App{
		Router:    router,
		Simulator: sim,
		Service:   svc,
		Cleanup:   closeJournal,
	}, nil
}

func openJournal(cfg config.Config) (storage.TradeJournal, func(), error) {
	if cfg.Journal.Driver != config.JournalPostgres {
		return storage.NewMemoryJournal(), func() {}, nil
	}

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return storage.NewPostgresJournal(db), closer(db), nil
}

func closer(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
