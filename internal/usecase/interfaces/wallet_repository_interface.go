package interfaces

import (
	"context"

	"giramae/internal/domain/entities"
)

// IWalletRepository reads wallets and applies ledger entries outside reservation flows
// (goal bonuses, purchases). ApplyTransaction returns false when the reference was
// already applied.

type IWalletRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Wallet, error)
	ListTransactions(ctx context.Context, userID string, limit int) ([]entities.Transaction, error)
	ApplyTransaction(ctx context.Context, t entities.Transaction) (bool, error)
}
