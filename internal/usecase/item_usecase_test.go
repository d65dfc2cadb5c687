package usecase

import (
	"context"
	"errors"
	"testing"

	"giramae/internal/domain/entities"
	mock_interfaces "giramae/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestItemUseCase(t *testing.T) {
	t.Run("publish forces owner and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.Item) (entities.Item, error) {
				if item.ID == "" || item.PublicadoPor != "owner" || item.Status != entities.ItemStatusDisponivel {
					t.Fatalf("unexpected item %+v", item)
				}
				return item, nil
			},
		)
		_, err := uc.Publish(context.Background(), "owner", entities.Item{Titulo: " Carrinho ", ValorGirinhas: 30, Status: entities.ItemStatusTrocado, PublicadoPor: "someone"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("publish validations", func(t *testing.T) {
		uc := NewItemUseCase(nil)
		if _, err := uc.Publish(context.Background(), "owner", entities.Item{ValorGirinhas: 1}); !errors.Is(err, ErrInvalidItemTitle) {
			t.Fatalf("expected ErrInvalidItemTitle, got %v", err)
		}
		if _, err := uc.Publish(context.Background(), "owner", entities.Item{Titulo: "x"}); !errors.Is(err, ErrInvalidItemPrice) {
			t.Fatalf("expected ErrInvalidItemPrice, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.Item{}, nil)
		if _, err := uc.GetByID(context.Background(), "item-1"); !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
