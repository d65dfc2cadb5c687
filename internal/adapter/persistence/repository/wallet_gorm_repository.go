package repository

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IWalletRepository = (*WalletGormRepository)(nil)

func NewWalletGormRepository(db *gorm.DB) *WalletGormRepository {
	return &WalletGormRepository{db: db}
}

func (r *WalletGormRepository) GetByUserID(ctx context.Context, userID string) (entities.Wallet, error) {
	var m WalletModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&m).Error; err != nil {
		return entities.Wallet{}, err
	}
	if m.UserID == "" {
		return entities.Wallet{}, nil
	}
	return fromWalletModel(m), nil
}

func (r *WalletGormRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]entities.Transaction, error) {
	var rows []TransactionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Transaction, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromTransactionModel(m))
	}
	return out, nil
}

func (r *WalletGormRepository) ApplyTransaction(ctx context.Context, t entities.Transaction) (bool, error) {
	var applied bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		applied, err = applyTransaction(tx, t)
		return err
	})
	return applied, err
}

// applyTransaction inserts the ledger entry and moves the wallet balance in the same
// transaction. A duplicate referencia inserts nothing and reports false.
func applyTransaction(tx *gorm.DB, t entities.Transaction) (bool, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	m := TransactionModel{
		ID:         t.ID,
		UserID:     t.UserID,
		Tipo:       string(t.Tipo),
		Valor:      t.Valor,
		Descricao:  t.Descricao,
		Referencia: t.Referencia,
		ReservaID:  t.ReservaID,
		CreatedAt:  t.CreatedAt,
	}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "referencia"}},
		DoNothing: true,
	}).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	delta := t.Delta()
	if delta == 0 {
		return true, nil
	}

	wallet := WalletModel{UserID: t.UserID, UpdatedAt: t.CreatedAt}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&wallet).Error; err != nil {
		return false, err
	}

	updates := map[string]any{
		"saldo_atual": gorm.Expr("saldo_atual + ?", delta),
		"updated_at":  t.CreatedAt,
	}
	if delta > 0 {
		updates["total_recebido"] = gorm.Expr("total_recebido + ?", t.Valor)
	} else {
		updates["total_gasto"] = gorm.Expr("total_gasto + ?", t.Valor)
	}
	if err := tx.Model(&WalletModel{}).Where("user_id = ?", t.UserID).Updates(updates).Error; err != nil {
		return false, err
	}
	return true, nil
}
