package interfaces

import (
	"context"
	"time"

	"giramae/internal/domain/entities"
)

// IMarketplaceUnitOfWork runs fn inside one database transaction. Returning an
// error from fn rolls everything back; nothing fn wrote is visible until commit.

type IMarketplaceUnitOfWork interface {
	Transact(ctx context.Context, fn func(tx IMarketplaceTx) error) error
}

// IMarketplaceTx is the transactional view of items, reservations, queues and wallets.
//
// The *ForUpdate getters take a row lock held until the transaction ends, which is what
// serializes concurrent requests for the same item. Getters return a zero value (empty ID)
// when the row does not exist.
type IMarketplaceTx interface {
	GetItemForUpdate(itemID string) (entities.Item, error)
	UpdateItemStatus(itemID string, status entities.ItemStatus) error
	GetReservationForUpdate(reservationID string) (entities.Reservation, error)
	GetActiveReservationByItem(itemID string) (entities.Reservation, error)
	CreateReservation(r entities.Reservation) (entities.Reservation, error)
	UpdateReservation(r entities.Reservation) error
	ListQueue(itemID string) ([]entities.WaitingQueueEntry, error)
	CreateQueueEntry(e entities.WaitingQueueEntry) (entities.WaitingQueueEntry, error)
	DeleteQueueEntry(entryID string) error
	ShiftQueueAfter(itemID string, position int) error
	DeleteQueue(itemID string) error
	GetWalletForUpdate(userID string) (entities.Wallet, error)
	ApplyTransaction(t entities.Transaction) (bool, error)
}

// IReservationRepository covers non-transactional reservation reads.
type IReservationRepository interface {
	ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error)
	CountCompletedExchanges(ctx context.Context, userID string) (int, error)
	GetQueueInfo(ctx context.Context, itemID string, userID string) (entities.QueueInfo, error)
}

// IItemRepository persists published items.
type IItemRepository interface {
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
}
