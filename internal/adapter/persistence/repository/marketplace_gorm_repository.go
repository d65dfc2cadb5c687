package repository

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarketplaceGormStore is the Postgres unit of work for reservation flows and the
// read side used by the expiration sweep, goal counting and queue info.
type MarketplaceGormStore struct {
	db *gorm.DB
}

var (
	_ interfaces.IMarketplaceUnitOfWork = (*MarketplaceGormStore)(nil)
	_ interfaces.IReservationRepository = (*MarketplaceGormStore)(nil)
	_ interfaces.IMarketplaceTx         = (*gormMarketplaceTx)(nil)
)

func NewMarketplaceGormStore(db *gorm.DB) *MarketplaceGormStore {
	return &MarketplaceGormStore{db: db}
}

func (s *MarketplaceGormStore) Transact(ctx context.Context, fn func(tx interfaces.IMarketplaceTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormMarketplaceTx{db: tx})
	})
}

func (s *MarketplaceGormStore) ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&ReservationModel{}).
		Where("status = ? AND prazo_expiracao <= ?", string(entities.ReservationStatusPendente), now).
		Order("prazo_expiracao ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *MarketplaceGormStore) CountCompletedExchanges(ctx context.Context, userID string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&ReservationModel{}).
		Where("status = ? AND (usuario_reservou = ? OR usuario_item = ?)", string(entities.ReservationStatusConfirmada), userID, userID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *MarketplaceGormStore) GetQueueInfo(ctx context.Context, itemID string, userID string) (entities.QueueInfo, error) {
	db := s.db.WithContext(ctx)

	var total int64
	if err := db.Model(&QueueEntryModel{}).Where("item_id = ?", itemID).Count(&total).Error; err != nil {
		return entities.QueueInfo{}, err
	}
	info := entities.QueueInfo{TotalFila: int(total)}
	if total == 0 || userID == "" {
		return info, nil
	}

	var entry QueueEntryModel
	if err := db.Where("item_id = ? AND usuario_id = ?", itemID, userID).Limit(1).Find(&entry).Error; err != nil {
		return entities.QueueInfo{}, err
	}
	info.PosicaoUsuario = entry.Posicao
	return info, nil
}

// gormMarketplaceTx runs every statement on the transaction handle it was created with.
type gormMarketplaceTx struct {
	db *gorm.DB
}

func (t *gormMarketplaceTx) forUpdate() *gorm.DB {
	return t.db.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (t *gormMarketplaceTx) GetItemForUpdate(itemID string) (entities.Item, error) {
	var m ItemModel
	if err := t.forUpdate().Where("id = ?", itemID).Limit(1).Find(&m).Error; err != nil {
		return entities.Item{}, err
	}
	if m.ID == "" {
		return entities.Item{}, nil
	}
	return fromItemModel(m), nil
}

func (t *gormMarketplaceTx) UpdateItemStatus(itemID string, status entities.ItemStatus) error {
	return t.db.Model(&ItemModel{}).
		Where("id = ?", itemID).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()}).Error
}

func (t *gormMarketplaceTx) GetReservationForUpdate(reservationID string) (entities.Reservation, error) {
	var m ReservationModel
	if err := t.forUpdate().Where("id = ?", reservationID).Limit(1).Find(&m).Error; err != nil {
		return entities.Reservation{}, err
	}
	if m.ID == "" {
		return entities.Reservation{}, nil
	}
	return fromReservationModel(m), nil
}

func (t *gormMarketplaceTx) GetActiveReservationByItem(itemID string) (entities.Reservation, error) {
	var m ReservationModel
	err := t.db.
		Where("item_id = ? AND status IN ?", itemID, []string{
			string(entities.ReservationStatusPendente),
			string(entities.ReservationStatusConfirmada),
		}).
		Limit(1).
		Find(&m).Error
	if err != nil {
		return entities.Reservation{}, err
	}
	if m.ID == "" {
		return entities.Reservation{}, nil
	}
	return fromReservationModel(m), nil
}

func (t *gormMarketplaceTx) CreateReservation(r entities.Reservation) (entities.Reservation, error) {
	m := toReservationModel(r)
	if err := t.db.Create(&m).Error; err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationModel(m), nil
}

func (t *gormMarketplaceTx) UpdateReservation(r entities.Reservation) error {
	return t.db.Model(&ReservationModel{}).
		Where("id = ?", r.ID).
		Updates(map[string]any{
			"status":            string(r.Status),
			"data_confirmacao":  r.DataConfirmacao,
			"data_cancelamento": r.DataCancelamento,
		}).Error
}

func (t *gormMarketplaceTx) ListQueue(itemID string) ([]entities.WaitingQueueEntry, error) {
	var rows []QueueEntryModel
	if err := t.db.Where("item_id = ?", itemID).Order("posicao ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.WaitingQueueEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromQueueEntryModel(m))
	}
	return out, nil
}

func (t *gormMarketplaceTx) CreateQueueEntry(e entities.WaitingQueueEntry) (entities.WaitingQueueEntry, error) {
	m := QueueEntryModel{
		ID:        e.ID,
		ItemID:    e.ItemID,
		UsuarioID: e.UsuarioID,
		Posicao:   e.Posicao,
		CreatedAt: e.CreatedAt,
	}
	if err := t.db.Create(&m).Error; err != nil {
		return entities.WaitingQueueEntry{}, err
	}
	return fromQueueEntryModel(m), nil
}

func (t *gormMarketplaceTx) DeleteQueueEntry(entryID string) error {
	return t.db.Where("id = ?", entryID).Delete(&QueueEntryModel{}).Error
}

func (t *gormMarketplaceTx) ShiftQueueAfter(itemID string, position int) error {
	return t.db.Model(&QueueEntryModel{}).
		Where("item_id = ? AND posicao > ?", itemID, position).
		UpdateColumn("posicao", gorm.Expr("posicao - 1")).Error
}

func (t *gormMarketplaceTx) DeleteQueue(itemID string) error {
	return t.db.Where("item_id = ?", itemID).Delete(&QueueEntryModel{}).Error
}

func (t *gormMarketplaceTx) GetWalletForUpdate(userID string) (entities.Wallet, error) {
	var m WalletModel
	if err := t.forUpdate().Where("user_id = ?", userID).Limit(1).Find(&m).Error; err != nil {
		return entities.Wallet{}, err
	}
	if m.UserID == "" {
		return entities.Wallet{}, nil
	}
	return fromWalletModel(m), nil
}

func (t *gormMarketplaceTx) ApplyTransaction(tr entities.Transaction) (bool, error) {
	return applyTransaction(t.db, tr)
}
