package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

// PostgresSchema creates the host store tables when missing.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS regions (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL DEFAULT '',
	currency_code TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS carts (
	id                    TEXT PRIMARY KEY,
	region_id             TEXT NOT NULL,
	email                 TEXT NOT NULL DEFAULT '',
	items                 JSONB NOT NULL DEFAULT '[]',
	billing_address       JSONB,
	payment_session       JSONB,
	payment               JSONB,
	payment_authorized_at TIMESTAMPTZ,
	completed_at          TIMESTAMPTZ,
	updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS orders (
	id            TEXT PRIMARY KEY,
	cart_id       TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	region_id     TEXT NOT NULL,
	currency_code TEXT NOT NULL,
	total         BIGINT NOT NULL,
	payment       JSONB,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// EnsurePostgresSchema applies PostgresSchema.
func EnsurePostgresSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, PostgresSchema); err != nil {
		logger.FromCtx(ctx).Error("[postgres] schema migration failed", zap.Error(err))
		return err
	}
	return nil
}

type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type pgTxKey struct{}

// PostgresTransactionManager runs fn inside a database transaction carried by
// ctx. Nested calls reuse the outer transaction.
type PostgresTransactionManager struct {
	db *sql.DB
}

var _ interfaces.ITransactionManager = (*PostgresTransactionManager)(nil)

func NewPostgresTransactionManager(db *sql.DB) *PostgresTransactionManager {
	return &PostgresTransactionManager{db: db}
}

func (m *PostgresTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(pgTxKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, pgTxKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		logger.FromCtx(ctx).Error("[postgres][tx] commit failed", zap.Error(err))
		return err
	}
	return nil
}

func executor(ctx context.Context, db *sql.DB) sqlExecutor {
	if tx, ok := ctx.Value(pgTxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}

// nullableJSON encodes v, returning NULL for a nil pointer.
func nullableJSON[T any](v *T) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// decodeJSON decodes b into a new T, returning nil for a NULL column.
func decodeJSON[T any](b []byte) (*T, error) {
	if len(b) == 0 {
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return nil, err
	}
	return v, nil
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
