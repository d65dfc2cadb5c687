package usecase

import (
	"context"
	"errors"
	"testing"

	"giramae/internal/domain/entities"
	mock_interfaces "giramae/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWalletUseCase(t *testing.T) {
	t.Run("empty wallet for new user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewWalletUseCase(repo)

		repo.EXPECT().GetByUserID(gomock.Any(), "u1").Return(entities.Wallet{}, nil)
		w, err := uc.GetWallet(context.Background(), " u1 ")
		if err != nil || w.UserID != "u1" || w.SaldoAtual != 0 {
			t.Fatalf("unexpected wallet %+v err=%v", w, err)
		}
	})

	t.Run("transactions limit clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWalletRepository(ctrl)
		uc := NewWalletUseCase(repo)

		repo.EXPECT().ListTransactions(gomock.Any(), "u1", 200).Return(nil, nil)
		repo.EXPECT().ListTransactions(gomock.Any(), "u1", 50).Return(nil, nil)
		if _, err := uc.ListTransactions(context.Background(), "u1", 5000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ListTransactions(context.Background(), "u1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid user", func(t *testing.T) {
		uc := NewWalletUseCase(nil)
		if _, err := uc.GetWallet(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})
}
