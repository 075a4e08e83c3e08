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

type RegionPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IRegionRepository = (*RegionPostgresRepository)(nil)

func NewRegionPostgresRepository(db *sql.DB) *RegionPostgresRepository {
	return &RegionPostgresRepository{db: db}
}

func (r *RegionPostgresRepository) GetByID(ctx context.Context, id string) (entities.Region, error) {
	var reg entities.Region
	err := executor(ctx, r.db).
		QueryRowContext(ctx, `SELECT id, name, currency_code FROM regions WHERE id = $1`, id).
		Scan(&reg.ID, &reg.Name, &reg.CurrencyCode)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Region{}, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("[postgres][regions] select failed", zap.String("region_id", id), zap.Error(err))
		return entities.Region{}, err
	}
	return reg, nil
}
