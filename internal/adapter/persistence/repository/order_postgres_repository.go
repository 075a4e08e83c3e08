package repository

import (
	"context"
	"database/sql"
	"errors"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// OrderPostgresRepository stores orders in the orders table. The UNIQUE
// constraint on cart_id keeps one order per cart.
type OrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderPostgresRepository)(nil)

func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{db: db}
}

const selectOrderByCartQuery = `
	SELECT id, cart_id, email, region_id, currency_code, total, payment, created_at
	FROM orders
	WHERE cart_id = $1`

const insertOrderQuery = `
	INSERT INTO orders (id, cart_id, email, region_id, currency_code, total, payment, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

const updateOrderQuery = `
	UPDATE orders
	SET email = $2, region_id = $3, currency_code = $4, total = $5, payment = $6, updated_at = NOW()
	WHERE cart_id = $1`

func (r *OrderPostgresRepository) GetByCartID(ctx context.Context, cartID string) (entities.Order, error) {
	var (
		o      entities.Order
		paymnt []byte
	)
	err := executor(ctx, r.db).QueryRowContext(ctx, selectOrderByCartQuery, cartID).Scan(
		&o.ID, &o.CartID, &o.Email, &o.RegionID, &o.CurrencyCode, &o.Total, &paymnt, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][orders] select failed", zap.String("cart_id", cartID), zap.Error(err))
		return entities.Order{}, err
	}
	if o.Payment, err = decodeJSON[entities.Payment](paymnt); err != nil {
		return entities.Order{}, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}

func (r *OrderPostgresRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	paymnt, err := nullableJSON(o.Payment)
	if err != nil {
		return entities.Order{}, err
	}
	_, err = executor(ctx, r.db).ExecContext(ctx, insertOrderQuery,
		o.ID, o.CartID, o.Email, o.RegionID, o.CurrencyCode, o.Total, paymnt, o.CreatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][orders] insert failed", zap.String("cart_id", o.CartID), zap.Error(err))
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderPostgresRepository) Save(ctx context.Context, o entities.Order) (entities.Order, error) {
	paymnt, err := nullableJSON(o.Payment)
	if err != nil {
		return entities.Order{}, err
	}
	res, err := executor(ctx, r.db).ExecContext(ctx, updateOrderQuery,
		o.CartID, o.Email, o.RegionID, o.CurrencyCode, o.Total, paymnt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][orders] update failed", zap.String("cart_id", o.CartID), zap.Error(err))
		return entities.Order{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.Order{}, sql.ErrNoRows
	}
	return o, nil
}
