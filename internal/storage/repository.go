package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	migrations "github.com/Adikun01000/StockporfolliatrackingSimulator/db"
	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/domain/models"
	pq "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

// ErrDuplicateTrade is returned when a trade id was already journaled.
var ErrDuplicateTrade = errors.New("trade already journaled")

const uniqueViolation = pq.ErrorCode("23505")

// TradeJournal is an append-only audit log of executed trades.
// It is never read back to restore simulator state.
type TradeJournal interface {
	Record(ctx context.Context, trade models.Trade) error
	Recent(ctx context.Context, limit int) ([]models.Trade, error)
	Ping(ctx context.Context) error
}

type postgresJournal struct {
	db *sql.DB
}

// NewPostgresJournal returns a journal backed by the trade_journal table.
func NewPostgresJournal(db *sql.DB) TradeJournal {
	return &postgresJournal{db: db}
}

// Migrate applies the embedded goose migrations.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (r *postgresJournal) Record(ctx context.Context, t models.Trade) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO trade_journal (id, symbol, side, quantity, price, total, cash_after, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID,
		t.Symbol,
		string(t.Side),
		t.Quantity,
		t.Price.StringFixed(2),
		t.Total.StringFixed(2),
		t.CashAfter.StringFixed(2),
		t.ExecutedAt,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateTrade, t.ID)
	}
	return err
}

// Recent returns up to limit trades, newest first.
func (r *postgresJournal) Recent(ctx context.Context, limit int) ([]models.Trade, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, symbol, side, quantity, price, total, cash_after, executed_at
		FROM trade_journal
		ORDER BY executed_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Trade
	for rows.Next() {
		var (
			t                       models.Trade
			side                    string
			price, total, cashAfter string
		)
		if err := rows.Scan(&t.ID, &t.Symbol, &side, &t.Quantity, &price, &total, &cashAfter, &t.ExecutedAt); err != nil {
			return nil, err
		}
		t.Side = models.Side(side)
		if t.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		if t.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if t.CashAfter, err = decimal.NewFromString(cashAfter); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *postgresJournal) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// memoryJournal keeps the journal in process memory for the session.
type memoryJournal struct {
	mu     sync.Mutex
	trades []models.Trade
}

// NewMemoryJournal returns a journal that lives as long as the process.
// Ping always succeeds.
func NewMemoryJournal() TradeJournal {
	return &memoryJournal{}
}

func (m *memoryJournal) Record(_ context.Context, t models.Trade) error {
	m.mu.Lock()
	m.trades = append(m.trades, t)
	m.mu.Unlock()
	return nil
}

func (m *memoryJournal) Recent(_ context.Context, limit int) ([]models.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.trades)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]models.Trade, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, m.trades[i])
	}
	return out, nil
}

func (m *memoryJournal) Ping(context.Context) error { return nil }
