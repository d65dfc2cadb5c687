package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

// IQueueUseCase answers obter_fila_espera: how many users wait for an item and where
// the caller stands.
type IQueueUseCase interface {
	GetQueueInfo(ctx context.Context, itemID, userID string) (entities.QueueInfo, error)
}

type QueueUseCase struct {
	items interfaces.IItemRepository
	reads interfaces.IReservationRepository
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(items interfaces.IItemRepository, reads interfaces.IReservationRepository) *QueueUseCase {
	return &QueueUseCase{items: items, reads: reads}
}

func (u *QueueUseCase) GetQueueInfo(ctx context.Context, itemID, userID string) (entities.QueueInfo, error) {
	itemID = strings.TrimSpace(itemID)
	userID = strings.TrimSpace(userID)
	if itemID == "" {
		return entities.QueueInfo{}, ErrInvalidItemID
	}
	if u.items == nil || u.reads == nil {
		return entities.QueueInfo{}, errors.New("queue repositories not configured")
	}

	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.QueueInfo{}, fmt.Errorf("load item: %w", err)
	}
	if item.ID == "" {
		return entities.QueueInfo{}, ErrItemNotFound
	}
	info, err := u.reads.GetQueueInfo(ctx, itemID, userID)
	if err != nil {
		return entities.QueueInfo{}, fmt.Errorf("load queue info: %w", err)
	}
	return info, nil
}
