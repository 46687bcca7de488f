package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/willianpsouza/VocabularyPlatform/internal/domain"
	"github.com/willianpsouza/VocabularyPlatform/internal/pkg/config"
)

const defaultQueryTimeout = 5 * time.Second

// Connect opens the pool described by cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type conn struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func newConn(db *pgxpool.Pool, timeout time.Duration) conn {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return conn{db: db, timeout: timeout}
}

// bound caps every store call so a stalled database cannot hold a request
// forever.
func (c conn) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// classify maps driver errors onto the domain taxonomy. conflict is the
// message used for unique violations.
func classify(err error, conflict string) error {
	if err == nil {
		return nil
	}

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.NewTimeoutError("Database operation").WithError(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.NewConflictError(conflict).WithError(err)
		case pgerrcode.ForeignKeyViolation:
			return domain.NewNotFoundError("Domain").WithError(err)
		case pgerrcode.QueryCanceled:
			return domain.NewTimeoutError("Database operation").WithError(err)
		}
	}
	return fmt.Errorf("store: %w", err)
}

// inTx runs fn inside a transaction bounded by the query timeout.
func (c conn) inTx(ctx context.Context, fn func(context.Context, pgx.Tx) error) error {
	ctx, cancel := c.bound(ctx)
	defer cancel()
	return pgx.BeginFunc(ctx, c.db, func(tx pgx.Tx) error {
		return fn(ctx, tx)
	})
}
