package interfaces

import (
	"context"

	"mercadopago_provider/internal/domain/entities"
)

// IRegionRepository reads regions. A missing region is returned as a zero value.
type IRegionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Region, error)
}
