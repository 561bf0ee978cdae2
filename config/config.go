package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/ingestion"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV:
//
//	SERVER_PORT=8080
//	TICK_INTERVAL=2s
//	INITIAL_CASH=10000.00
//	CURRENCY=USD
//	MARKET_SEED=AAPL=150.50,MSFT=285.75
//	JOURNAL_DRIVER=postgres
//	POSTGRES_HOST=localhost
type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
	Journal    JournalConfig
	Postgres   PostgresConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	RateLimit      int // requests per minute per client IP, 0 disables
}

// SimulationConfig drives the market and the starting account.
type SimulationConfig struct {
	TickInterval time.Duration
	InitialCash  decimal.Decimal
	Currency     string
	// MarketSeed is the inline "SYMBOL=PRICE,..." list. MarketSeedFile, when
	// set, points to a "Symbol;Price" file and takes precedence.
	MarketSeed     string
	MarketSeedFile string
	// RandomSeed fixes the price walk; 0 seeds from the clock.
	RandomSeed uint64
}

// JournalConfig selects where executed trades are journaled.
type JournalConfig struct {
	Driver string // "memory" or "postgres"
}

const (
	JournalMemory   = "memory"
	JournalPostgres = "postgres"
)

// PostgresConfig defines connection details for PostgreSQL. URL is the
// computed DSN used by database/sql.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Invalid or missing values terminate the process via validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", 600)

	viper.SetDefault("TICK_INTERVAL", "2s")
	viper.SetDefault("INITIAL_CASH", "10000.00")
	viper.SetDefault("CURRENCY", "USD")
	viper.SetDefault("MARKET_SEED", ingestion.DefaultSeedList)
	viper.SetDefault("MARKET_SEED_FILE", "")
	viper.SetDefault("RANDOM_SEED", 0)

	viper.SetDefault("JOURNAL_DRIVER", JournalMemory)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "stockpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	var problems []string
	cash, err := decimal.NewFromString(strings.TrimSpace(viper.GetString("INITIAL_CASH")))
	if err != nil {
		problems = append(problems, fmt.Sprintf("INITIAL_CASH: %v", err))
	}

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimit:      viper.GetInt("RATE_LIMIT"),
		},
		Simulation: SimulationConfig{
			TickInterval:   viper.GetDuration("TICK_INTERVAL"),
			InitialCash:    cash,
			Currency:       strings.ToUpper(viper.GetString("CURRENCY")),
			MarketSeed:     viper.GetString("MARKET_SEED"),
			MarketSeedFile: viper.GetString("MARKET_SEED_FILE"),
			RandomSeed:     viper.GetUint64("RANDOM_SEED"),
		},
		Journal: JournalConfig{
			Driver: strings.ToLower(viper.GetString("JOURNAL_DRIVER")),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	if len(problems) > 0 {
		log.Fatalf("invalid configuration: %v\n", problems)
	}
	validateConfig()
}

// validateConfig terminates the application when AppConfig is unusable.
func validateConfig() {
	if problems := AppConfig.Validate(); len(problems) > 0 {
		log.Fatalf("invalid configuration: %v\n", problems)
	}
}

// Validate lists every missing or out-of-range setting.
func (c Config) Validate() []string {
	var problems []string

	if c.Server.Port == "" {
		problems = append(problems, "SERVER_PORT is required")
	}
	if c.Simulation.TickInterval <= 0 {
		problems = append(problems, "TICK_INTERVAL must be positive")
	}
	if c.Simulation.InitialCash.IsNegative() {
		problems = append(problems, "INITIAL_CASH must not be negative")
	}
	if c.Simulation.Currency == "" {
		problems = append(problems, "CURRENCY is required")
	}
	if c.Simulation.MarketSeed == "" && c.Simulation.MarketSeedFile == "" {
		problems = append(problems, "MARKET_SEED or MARKET_SEED_FILE is required")
	}

	switch c.Journal.Driver {
	case JournalMemory:
	case JournalPostgres:
		if c.Postgres.Host == "" {
			problems = append(problems, "POSTGRES_HOST is required")
		}
		if c.Postgres.Port == 0 {
			problems = append(problems, "POSTGRES_PORT is required")
		}
		if c.Postgres.User == "" {
			problems = append(problems, "POSTGRES_USER is required")
		}
		if c.Postgres.Password == "" {
			problems = append(problems, "POSTGRES_PASSWORD is required")
		}
		if c.Postgres.DBName == "" {
			problems = append(problems, "POSTGRES_DB is required")
		}
	default:
		problems = append(problems, fmt.Sprintf("JOURNAL_DRIVER %q must be memory or postgres", c.Journal.Driver))
	}
	return problems
}
