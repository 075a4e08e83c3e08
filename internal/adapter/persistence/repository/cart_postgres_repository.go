package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mercadopago_provider/internal/domain/entities"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CartPostgresRepository stores carts in the carts table. Line items, billing
// address, payment session and payment are JSONB columns.
type CartPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICartRepository = (*CartPostgresRepository)(nil)

func NewCartPostgresRepository(db *sql.DB) *CartPostgresRepository {
	return &CartPostgresRepository{db: db}
}

const selectCartQuery = `
	SELECT id, region_id, email, items, billing_address, payment_session, payment,
	       payment_authorized_at, completed_at
	FROM carts
	WHERE id = $1`

const upsertCartQuery = `
	INSERT INTO carts (id, region_id, email, items, billing_address, payment_session, payment,
	                   payment_authorized_at, completed_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	ON CONFLICT (id) DO UPDATE SET
		region_id = EXCLUDED.region_id,
		email = EXCLUDED.email,
		items = EXCLUDED.items,
		billing_address = EXCLUDED.billing_address,
		payment_session = EXCLUDED.payment_session,
		payment = EXCLUDED.payment,
		payment_authorized_at = EXCLUDED.payment_authorized_at,
		completed_at = EXCLUDED.completed_at,
		updated_at = NOW()`

func (r *CartPostgresRepository) GetByID(ctx context.Context, id string) (entities.Cart, error) {
	var (
		c                               entities.Cart
		items, address, session, paymnt []byte
		authorizedAt, completedAt       sql.NullTime
	)
	err := executor(ctx, r.db).QueryRowContext(ctx, selectCartQuery, id).Scan(
		&c.ID, &c.RegionID, &c.Email, &items, &address, &session, &paymnt, &authorizedAt, &completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][carts] select failed", zap.String("cart_id", id), zap.Error(err))
		return entities.Cart{}, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return entities.Cart{}, err
		}
	}
	if c.BillingAddress, err = decodeJSON[entities.Address](address); err != nil {
		return entities.Cart{}, err
	}
	if c.PaymentSession, err = decodeJSON[entities.PaymentSession](session); err != nil {
		return entities.Cart{}, err
	}
	if c.Payment, err = decodeJSON[entities.Payment](paymnt); err != nil {
		return entities.Cart{}, err
	}
	c.PaymentAuthorizedAt = fromNullTime(authorizedAt)
	c.CompletedAt = fromNullTime(completedAt)
	return c, nil
}

func (r *CartPostgresRepository) Save(ctx context.Context, c entities.Cart) (entities.Cart, error) {
	lineItems := c.Items
	if lineItems == nil {
		lineItems = []entities.LineItem{}
	}
	items, err := json.Marshal(lineItems)
	if err != nil {
		return entities.Cart{}, err
	}
	address, err := nullableJSON(c.BillingAddress)
	if err != nil {
		return entities.Cart{}, err
	}
	session, err := nullableJSON(c.PaymentSession)
	if err != nil {
		return entities.Cart{}, err
	}
	paymnt, err := nullableJSON(c.Payment)
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = executor(ctx, r.db).ExecContext(ctx, upsertCartQuery,
		c.ID, c.RegionID, c.Email, items, address, session, paymnt,
		toNullTime(c.PaymentAuthorizedAt), toNullTime(c.CompletedAt),
	)
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][carts] upsert failed", zap.String("cart_id", c.ID), zap.Error(err))
		return entities.Cart{}, err
	}
	return c, nil
}
