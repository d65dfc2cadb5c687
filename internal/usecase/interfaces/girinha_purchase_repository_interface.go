package interfaces

import (
	"context"

	"giramae/internal/domain/entities"
)

// IGirinhaPurchaseRepository abstracts DynamoDB persistence for GirinhaPurchase.

type IGirinhaPurchaseRepository interface {
	Create(ctx context.Context, p entities.GirinhaPurchase) (entities.GirinhaPurchase, error)
	GetByID(ctx context.Context, id string) (entities.GirinhaPurchase, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.GirinhaPurchase, error)
}
