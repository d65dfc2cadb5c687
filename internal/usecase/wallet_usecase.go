package usecase

import (
	"context"
	"strings"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

const (
	defaultTransactionsLimit = 50
	maxTransactionsLimit     = 200
)

type IWalletUseCase interface {
	GetWallet(ctx context.Context, userID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]entities.Transaction, error)
}

type WalletUseCase struct {
	repo interfaces.IWalletRepository
}

var _ IWalletUseCase = (*WalletUseCase)(nil)

func NewWalletUseCase(repo interfaces.IWalletRepository) *WalletUseCase {
	return &WalletUseCase{repo: repo}
}

// GetWallet returns an empty wallet for users who never moved Girinhas.
func (u *WalletUseCase) GetWallet(ctx context.Context, userID string) (entities.Wallet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Wallet{}, ErrInvalidUserID
	}
	w, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Wallet{}, err
	}
	if w.UserID == "" {
		w.UserID = userID
	}
	return w, nil
}

func (u *WalletUseCase) ListTransactions(ctx context.Context, userID string, limit int) ([]entities.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if limit <= 0 {
		limit = defaultTransactionsLimit
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}
	return u.repo.ListTransactions(ctx, userID, limit)
}
