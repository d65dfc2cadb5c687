package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemTitle = errors.New("invalid titulo")
	ErrInvalidItemPrice = errors.New("invalid valor_girinhas")
)

type IItemUseCase interface {
	Publish(ctx context.Context, ownerID string, item entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
}

type ItemUseCase struct {
	repo interfaces.IItemRepository
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(repo interfaces.IItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Publish lists a new item as disponivel. Status and ownership come from the caller's
// identity, never from the payload.
func (u *ItemUseCase) Publish(ctx context.Context, ownerID string, item entities.Item) (entities.Item, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Item{}, ErrInvalidUserID
	}
	item.Titulo = strings.TrimSpace(item.Titulo)
	if item.Titulo == "" {
		return entities.Item{}, ErrInvalidItemTitle
	}
	if item.ValorGirinhas <= 0 {
		return entities.Item{}, ErrInvalidItemPrice
	}

	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.PublicadoPor = ownerID
	item.Status = entities.ItemStatusDisponivel
	item.ValorGirinhas = entities.Round2(item.ValorGirinhas)
	item.CreatedAt = now
	item.UpdatedAt = now
	return u.repo.Create(ctx, item)
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidItemID
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if item.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return item, nil
}
