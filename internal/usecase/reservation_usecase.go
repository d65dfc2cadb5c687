package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"giramae/internal/config"
	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemID           = errors.New("invalid item_id")
	ErrInvalidUserID           = errors.New("invalid user_id")
	ErrInvalidReservationID    = errors.New("invalid reservation_id")
	ErrItemNotFound            = errors.New("item not found")
	ErrCannotReserveOwnItem    = errors.New("cannot reserve own item")
	ErrItemUnavailable         = errors.New("item unavailable")
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrAlreadyReserved         = errors.New("item already reserved by user")
	ErrAlreadyInQueue          = errors.New("user already in queue")
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrReservationNotPending   = errors.New("reservation not pending")
	ErrReservationExpired      = errors.New("reservation expired")
	ErrInvalidConfirmationCode = errors.New("invalid confirmation code")
	ErrQueueEntryNotFound      = errors.New("queue entry not found")
)

// IReservationUseCase coordinates the reservation lifecycle.
//
// Every mutation runs in a single store transaction that locks the item or reservation
// row first. Change events, pushes and goal counting happen only after commit.

type IReservationUseCase interface {
	RequestItem(ctx context.Context, itemID, userID string) (entities.RequestResult, error)
	ConfirmWithCode(ctx context.Context, reservationID, code, sellerID string) (entities.ExchangeResult, error)
	Cancel(ctx context.Context, reservationID, userID string) (entities.Reservation, error)
	LeaveQueue(ctx context.Context, itemID, userID string) error
	ProcessExpiredBatch(ctx context.Context, batchSize int) (int, error)
}

type ReservationUseCase struct {
	uow      interfaces.IMarketplaceUnitOfWork
	reads    interfaces.IReservationRepository
	broker   interfaces.IChangeBroker
	notifier interfaces.INotifier
	goals    interfaces.IExchangeRecorder
	cfg      config.Marketplace

	now     func() time.Time
	newCode func() (string, error)
}

var _ IReservationUseCase = (*ReservationUseCase)(nil)

func NewReservationUseCase(uow interfaces.IMarketplaceUnitOfWork, reads interfaces.IReservationRepository, broker interfaces.IChangeBroker, notifier interfaces.INotifier, goals interfaces.IExchangeRecorder, cfg config.Marketplace) *ReservationUseCase {
	if cfg.ReservationTTL <= 0 {
		cfg.ReservationTTL = 48 * time.Hour
	}
	if cfg.ExpirationBatchSize <= 0 {
		cfg.ExpirationBatchSize = 50
	}
	return &ReservationUseCase{
		uow:      uow,
		reads:    reads,
		broker:   broker,
		notifier: notifier,
		goals:    goals,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newCode:  generateConfirmationCode,
	}
}

// afterCommit collects the side effects of a transaction; they are dispatched
// only once the transaction committed.
type afterCommit struct {
	events    []entities.ChangeEvent
	pushes    []pendingPush
	exchanges []string
}

type pendingPush struct {
	userID string
	n      entities.PushNotification
}

func (a *afterCommit) reservationChanged(kind entities.ChangeType, before *entities.Reservation, after entities.Reservation) {
	a.events = append(a.events,
		entities.NewReservationEvent(kind, after.UsuarioReservou, before, after),
		entities.NewReservationEvent(kind, after.UsuarioItem, before, after),
	)
}

func (a *afterCommit) push(userID string, n entities.PushNotification) {
	a.pushes = append(a.pushes, pendingPush{userID: userID, n: n})
}

func (u *ReservationUseCase) RequestItem(ctx context.Context, itemID, userID string) (entities.RequestResult, error) {
	itemID = strings.TrimSpace(itemID)
	userID = strings.TrimSpace(userID)
	if itemID == "" {
		return entities.RequestResult{}, ErrInvalidItemID
	}
	if userID == "" {
		return entities.RequestResult{}, ErrInvalidUserID
	}
	log.Printf("[reservation][usecase] request start item_id=%s user_id=%s", itemID, userID)

	var result entities.RequestResult
	var out afterCommit
	err := u.uow.Transact(ctx, func(tx interfaces.IMarketplaceTx) error {
		result = entities.RequestResult{}
		out = afterCommit{}

		item, err := tx.GetItemForUpdate(itemID)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if item.ID == "" {
			return ErrItemNotFound
		}
		if item.IsOwnedBy(userID) {
			return ErrCannotReserveOwnItem
		}

		switch item.Status {
		case entities.ItemStatusDisponivel:
			wallet, err := tx.GetWalletForUpdate(userID)
			if err != nil {
				return fmt.Errorf("load wallet: %w", err)
			}
			if !wallet.CanAfford(item.ValorGirinhas) {
				return ErrInsufficientBalance
			}
			res, err := u.openReservation(tx, item, userID, &out)
			if err != nil {
				return err
			}
			result.Reservation = &res
			return nil

		case entities.ItemStatusReservado:
			active, err := tx.GetActiveReservationByItem(itemID)
			if err != nil {
				return fmt.Errorf("load active reservation: %w", err)
			}
			if active.UsuarioReservou == userID {
				return ErrAlreadyReserved
			}
			queue, err := tx.ListQueue(itemID)
			if err != nil {
				return fmt.Errorf("load queue: %w", err)
			}
			for _, e := range queue {
				if e.UsuarioID == userID {
					return ErrAlreadyInQueue
				}
			}
			entry, err := tx.CreateQueueEntry(entities.WaitingQueueEntry{
				ID:        uuid.NewString(),
				ItemID:    itemID,
				UsuarioID: userID,
				Posicao:   len(queue) + 1,
				CreatedAt: u.now(),
			})
			if err != nil {
				return fmt.Errorf("create queue entry: %w", err)
			}
			result.QueueEntry = &entry
			return nil

		default:
			return ErrItemUnavailable
		}
	})
	if err != nil {
		log.Printf("[reservation][usecase] request failed item_id=%s user_id=%s err=%v", itemID, userID, err)
		return entities.RequestResult{}, err
	}

	u.dispatch(ctx, out)
	if result.Reservation != nil {
		log.Printf("[reservation][usecase] request success item_id=%s reserva_id=%s", itemID, result.Reservation.ID)
	} else if result.QueueEntry != nil {
		log.Printf("[reservation][usecase] request queued item_id=%s user_id=%s posicao=%d", itemID, userID, result.QueueEntry.Posicao)
	}
	return result, nil
}

func (u *ReservationUseCase) ConfirmWithCode(ctx context.Context, reservationID, code, sellerID string) (entities.ExchangeResult, error) {
	reservationID = strings.TrimSpace(reservationID)
	sellerID = strings.TrimSpace(sellerID)
	code = strings.TrimSpace(code)
	if reservationID == "" {
		return entities.ExchangeResult{}, ErrInvalidReservationID
	}
	if sellerID == "" {
		return entities.ExchangeResult{}, ErrInvalidUserID
	}
	if !IsConfirmationCode(code) {
		return entities.ExchangeResult{}, ErrInvalidConfirmationCode
	}
	log.Printf("[reservation][usecase] confirm start reserva_id=%s", reservationID)

	var result entities.ExchangeResult
	var out afterCommit
	err := u.uow.Transact(ctx, func(tx interfaces.IMarketplaceTx) error {
		result = entities.ExchangeResult{}
		out = afterCommit{}

		res, err := tx.GetReservationForUpdate(reservationID)
		if err != nil {
			return fmt.Errorf("load reservation: %w", err)
		}
		if res.ID == "" || res.UsuarioItem != sellerID {
			return ErrReservationNotFound
		}
		if res.Status != entities.ReservationStatusPendente {
			return ErrReservationNotPending
		}
		now := u.now()
		if res.IsExpired(now) {
			return ErrReservationExpired
		}
		if subtle.ConstantTimeCompare([]byte(res.CodigoConfirmacao), []byte(code)) != 1 {
			return ErrInvalidConfirmationCode
		}

		item, err := tx.GetItemForUpdate(res.ItemID)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if item.ID == "" {
			return fmt.Errorf("item %s of reservation %s missing", res.ItemID, res.ID)
		}

		before := res
		res.Status = entities.ReservationStatusConfirmada
		res.DataConfirmacao = &now
		if err := tx.UpdateReservation(res); err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}

		credited, fee := entities.SplitFee(res.ValorGirinhas, u.cfg.FeePercent)
		reservaID := res.ID
		if _, err := tx.ApplyTransaction(entities.Transaction{
			ID:         uuid.NewString(),
			UserID:     res.UsuarioItem,
			Tipo:       entities.TransactionRecebidoTroca,
			Valor:      credited,
			Descricao:  "Troca do item " + item.Titulo,
			Referencia: "reserva:" + res.ID + ":recebido",
			ReservaID:  &reservaID,
			CreatedAt:  now,
		}); err != nil {
			return fmt.Errorf("credit seller: %w", err)
		}
		if fee > 0 {
			if _, err := tx.ApplyTransaction(entities.Transaction{
				ID:         uuid.NewString(),
				UserID:     res.UsuarioItem,
				Tipo:       entities.TransactionTaxaQueimada,
				Valor:      fee,
				Descricao:  "Taxa da troca do item " + item.Titulo,
				Referencia: "reserva:" + res.ID + ":taxa",
				ReservaID:  &reservaID,
				CreatedAt:  now,
			}); err != nil {
				return fmt.Errorf("record fee: %w", err)
			}
		}

		if err := tx.UpdateItemStatus(item.ID, entities.ItemStatusTrocado); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		queue, err := tx.ListQueue(item.ID)
		if err != nil {
			return fmt.Errorf("load queue: %w", err)
		}
		if len(queue) > 0 {
			if err := tx.DeleteQueue(item.ID); err != nil {
				return fmt.Errorf("clear queue: %w", err)
			}
			for _, e := range queue {
				out.push(e.UsuarioID, entities.PushNotification{
					Title:   "Item indisponível",
					Message: fmt.Sprintf("O item %s foi trocado e você saiu da fila.", item.Titulo),
					Type:    entities.NotificationSistema,
				})
			}
		}

		out.reservationChanged(entities.ChangeUpdate, &before, res)
		out.push(res.UsuarioReservou, entities.PushNotification{
			Title:   "Troca confirmada",
			Message: fmt.Sprintf("A troca do item %s foi confirmada.", item.Titulo),
			Type:    entities.NotificationReservaConfirmada,
			Data:    map[string]any{"reserva_id": res.ID},
		})
		out.push(res.UsuarioItem, entities.PushNotification{
			Title:   "Girinhas recebidas",
			Message: fmt.Sprintf("Você recebeu %.2f Girinhas pela troca do item %s.", credited, item.Titulo),
			Type:    entities.NotificationGirinhasRecebidas,
			Data:    map[string]any{"reserva_id": res.ID, "valor": credited},
		})
		out.exchanges = append(out.exchanges, res.UsuarioReservou, res.UsuarioItem)

		result = entities.ExchangeResult{
			ReservationID:  res.ID,
			ItemID:         item.ID,
			ValorCreditado: credited,
			TaxaQueimada:   fee,
		}
		return nil
	})
	if err != nil {
		log.Printf("[reservation][usecase] confirm failed reserva_id=%s err=%v", reservationID, err)
		return entities.ExchangeResult{}, err
	}

	u.dispatch(ctx, out)
	log.Printf("[reservation][usecase] confirm success reserva_id=%s valor_creditado=%.2f taxa_queimada=%.2f", reservationID, result.ValorCreditado, result.TaxaQueimada)
	return result, nil
}

func (u *ReservationUseCase) Cancel(ctx context.Context, reservationID, userID string) (entities.Reservation, error) {
	reservationID = strings.TrimSpace(reservationID)
	userID = strings.TrimSpace(userID)
	if reservationID == "" {
		return entities.Reservation{}, ErrInvalidReservationID
	}
	if userID == "" {
		return entities.Reservation{}, ErrInvalidUserID
	}
	log.Printf("[reservation][usecase] cancel start reserva_id=%s user_id=%s", reservationID, userID)

	var cancelled entities.Reservation
	var out afterCommit
	err := u.uow.Transact(ctx, func(tx interfaces.IMarketplaceTx) error {
		out = afterCommit{}
		res, err := tx.GetReservationForUpdate(reservationID)
		if err != nil {
			return fmt.Errorf("load reservation: %w", err)
		}
		if res.ID == "" || !res.InvolvesUser(userID) {
			return ErrReservationNotFound
		}
		if res.Status != entities.ReservationStatusPendente {
			return ErrReservationNotPending
		}
		cancelled, err = u.closeReservation(tx, res, entities.ReservationStatusCancelada, &out)
		return err
	})
	if err != nil {
		log.Printf("[reservation][usecase] cancel failed reserva_id=%s err=%v", reservationID, err)
		return entities.Reservation{}, err
	}

	u.dispatch(ctx, out)
	log.Printf("[reservation][usecase] cancel success reserva_id=%s", reservationID)
	return cancelled, nil
}

func (u *ReservationUseCase) LeaveQueue(ctx context.Context, itemID, userID string) error {
	itemID = strings.TrimSpace(itemID)
	userID = strings.TrimSpace(userID)
	if itemID == "" {
		return ErrInvalidItemID
	}
	if userID == "" {
		return ErrInvalidUserID
	}

	err := u.uow.Transact(ctx, func(tx interfaces.IMarketplaceTx) error {
		item, err := tx.GetItemForUpdate(itemID)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if item.ID == "" {
			return ErrItemNotFound
		}
		queue, err := tx.ListQueue(itemID)
		if err != nil {
			return fmt.Errorf("load queue: %w", err)
		}
		for _, e := range queue {
			if e.UsuarioID != userID {
				continue
			}
			if err := tx.DeleteQueueEntry(e.ID); err != nil {
				return fmt.Errorf("delete queue entry: %w", err)
			}
			if err := tx.ShiftQueueAfter(itemID, e.Posicao); err != nil {
				return fmt.Errorf("shift queue: %w", err)
			}
			return nil
		}
		return ErrQueueEntryNotFound
	})
	if err != nil {
		log.Printf("[reservation][usecase] leave queue failed item_id=%s user_id=%s err=%v", itemID, userID, err)
		return err
	}
	log.Printf("[reservation][usecase] leave queue success item_id=%s user_id=%s", itemID, userID)
	return nil
}

// ProcessExpiredBatch expires pendente reservations whose deadline passed, oldest first.
// Each reservation is handled in its own transaction so one failure does not roll back
// the rest of the batch; any failure is reported as an error next to the processed count.
func (u *ReservationUseCase) ProcessExpiredBatch(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = u.cfg.ExpirationBatchSize
	}
	if batchSize > config.MaxExpirationBatchSize {
		batchSize = config.MaxExpirationBatchSize
	}
	if u.reads == nil {
		return 0, errors.New("reservation repository not configured")
	}

	now := u.now()
	ids, err := u.reads.ListExpiredIDs(ctx, now, batchSize)
	if err != nil {
		log.Printf("[reservation][usecase] list expired failed err=%v", err)
		return 0, fmt.Errorf("list expired reservations: %w", err)
	}
	log.Printf("[reservation][usecase] expiration sweep start candidates=%d batch_size=%d", len(ids), batchSize)

	processed, failed := 0, 0
	var lastErr error
	for _, id := range ids {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		var out afterCommit
		expired := false
		err := u.uow.Transact(ctx, func(tx interfaces.IMarketplaceTx) error {
			out = afterCommit{}
			expired = false
			res, err := tx.GetReservationForUpdate(id)
			if err != nil {
				return fmt.Errorf("load reservation: %w", err)
			}
			// Confirmed or cancelled between listing and locking.
			if res.ID == "" || !res.IsExpired(now) {
				return nil
			}
			closed, err := u.closeReservation(tx, res, entities.ReservationStatusExpirada, &out)
			if err != nil {
				return err
			}
			out.push(closed.UsuarioReservou, entities.PushNotification{
				Title:   "Reserva expirada",
				Message: "Sua reserva expirou e as Girinhas foram devolvidas.",
				Type:    entities.NotificationSistema,
				Data:    map[string]any{"action_url": "/minhas-reservas", "reserva_id": closed.ID},
			})
			expired = true
			return nil
		})
		if err != nil {
			failed++
			lastErr = err
			log.Printf("[reservation][usecase] expire failed reserva_id=%s err=%v", id, err)
			continue
		}
		if expired {
			processed++
			u.dispatch(ctx, out)
		}
	}

	log.Printf("[reservation][usecase] expiration sweep done processed=%d failed=%d", processed, failed)
	if failed > 0 {
		return processed, fmt.Errorf("expire reservations: %d failed, %d processed: %w", failed, processed, lastErr)
	}
	return processed, nil
}

// openReservation creates a pendente reservation for userID, blocks the price in the
// requester's wallet and marks the item reservado. Affordability is checked by the caller.
func (u *ReservationUseCase) openReservation(tx interfaces.IMarketplaceTx, item entities.Item, userID string, out *afterCommit) (entities.Reservation, error) {
	code, err := u.newCode()
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("generate confirmation code: %w", err)
	}
	now := u.now()
	res := entities.Reservation{
		ID:                uuid.NewString(),
		ItemID:            item.ID,
		UsuarioReservou:   userID,
		UsuarioItem:       item.PublicadoPor,
		ValorGirinhas:     item.ValorGirinhas,
		Status:            entities.ReservationStatusPendente,
		CodigoConfirmacao: code,
		PrazoExpiracao:    now.Add(u.cfg.ReservationTTL),
		DataReserva:       now,
	}
	created, err := tx.CreateReservation(res)
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("create reservation: %w", err)
	}
	reservaID := created.ID
	if _, err := tx.ApplyTransaction(entities.Transaction{
		ID:         uuid.NewString(),
		UserID:     userID,
		Tipo:       entities.TransactionBloqueioReserva,
		Valor:      item.ValorGirinhas,
		Descricao:  "Reserva do item " + item.Titulo,
		Referencia: "reserva:" + created.ID + ":bloqueio",
		ReservaID:  &reservaID,
		CreatedAt:  now,
	}); err != nil {
		return entities.Reservation{}, fmt.Errorf("block balance: %w", err)
	}
	if err := tx.UpdateItemStatus(item.ID, entities.ItemStatusReservado); err != nil {
		return entities.Reservation{}, fmt.Errorf("update item: %w", err)
	}

	out.reservationChanged(entities.ChangeInsert, nil, created)
	out.push(item.PublicadoPor, entities.PushNotification{
		Title:   "Item reservado",
		Message: fmt.Sprintf("Seu item %s foi reservado.", item.Titulo),
		Type:    entities.NotificationItemReservado,
		Data:    map[string]any{"reserva_id": created.ID, "item_id": item.ID},
	})
	return created, nil
}

// closeReservation moves a pendente reservation to a terminal status, refunds the
// requester's block and hands the item to the next waiting user.
func (u *ReservationUseCase) closeReservation(tx interfaces.IMarketplaceTx, res entities.Reservation, status entities.ReservationStatus, out *afterCommit) (entities.Reservation, error) {
	now := u.now()
	before := res
	res.Status = status
	res.DataCancelamento = &now
	if err := tx.UpdateReservation(res); err != nil {
		return entities.Reservation{}, fmt.Errorf("update reservation: %w", err)
	}
	reservaID := res.ID
	if _, err := tx.ApplyTransaction(entities.Transaction{
		ID:         uuid.NewString(),
		UserID:     res.UsuarioReservou,
		Tipo:       entities.TransactionReembolsoReserva,
		Valor:      res.ValorGirinhas,
		Descricao:  "Reembolso de reserva " + string(status),
		Referencia: "reserva:" + res.ID + ":reembolso",
		ReservaID:  &reservaID,
		CreatedAt:  now,
	}); err != nil {
		return entities.Reservation{}, fmt.Errorf("refund block: %w", err)
	}
	out.reservationChanged(entities.ChangeUpdate, &before, res)

	item, err := tx.GetItemForUpdate(res.ItemID)
	if err != nil {
		return entities.Reservation{}, fmt.Errorf("load item: %w", err)
	}
	if item.ID == "" {
		return entities.Reservation{}, fmt.Errorf("item %s of reservation %s missing", res.ItemID, res.ID)
	}
	if err := u.releaseOrPromote(tx, item, out); err != nil {
		return entities.Reservation{}, err
	}
	return res, nil
}

// releaseOrPromote walks the queue from position 1. Users who can no longer cover the
// price are dropped; the first one who can gets a fresh reservation. Positions behind
// every removed entry move up by one, so the queue stays contiguous. With nobody left
// the item goes back to disponivel.
func (u *ReservationUseCase) releaseOrPromote(tx interfaces.IMarketplaceTx, item entities.Item, out *afterCommit) error {
	queue, err := tx.ListQueue(item.ID)
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}

	removed := 0
	for _, entry := range queue {
		position := entry.Posicao - removed
		if err := tx.DeleteQueueEntry(entry.ID); err != nil {
			return fmt.Errorf("delete queue entry: %w", err)
		}
		if err := tx.ShiftQueueAfter(item.ID, position); err != nil {
			return fmt.Errorf("shift queue: %w", err)
		}
		removed++

		wallet, err := tx.GetWalletForUpdate(entry.UsuarioID)
		if err != nil {
			return fmt.Errorf("load wallet: %w", err)
		}
		if !wallet.CanAfford(item.ValorGirinhas) {
			log.Printf("[reservation][usecase] queue entry dropped insufficient balance item_id=%s user_id=%s", item.ID, entry.UsuarioID)
			out.push(entry.UsuarioID, entities.PushNotification{
				Title:   "Você saiu da fila",
				Message: fmt.Sprintf("Chegou sua vez no item %s, mas seu saldo não cobre o valor.", item.Titulo),
				Type:    entities.NotificationSistema,
				Data:    map[string]any{"action_url": "/carteira", "item_id": item.ID},
			})
			continue
		}

		promoted, err := u.openReservation(tx, item, entry.UsuarioID, out)
		if err != nil {
			return err
		}
		log.Printf("[reservation][usecase] queue head promoted item_id=%s reserva_id=%s user_id=%s", item.ID, promoted.ID, entry.UsuarioID)
		return nil
	}

	if err := tx.UpdateItemStatus(item.ID, entities.ItemStatusDisponivel); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (u *ReservationUseCase) dispatch(ctx context.Context, out afterCommit) {
	for _, ev := range out.events {
		if u.broker == nil {
			break
		}
		if err := u.broker.Publish(ctx, ev); err != nil {
			log.Printf("[reservation][usecase] publish change failed table=%s user_id=%s err=%v", ev.Table, ev.UserID, err)
		}
	}
	for _, p := range out.pushes {
		if u.notifier == nil {
			break
		}
		if err := u.notifier.Notify(ctx, p.userID, p.n); err != nil {
			log.Printf("[reservation][usecase] push failed user_id=%s type=%s err=%v", p.userID, p.n.Type, err)
		}
	}
	for _, userID := range out.exchanges {
		if u.goals == nil {
			break
		}
		if _, err := u.goals.RecordExchange(ctx, userID); err != nil {
			log.Printf("[reservation][usecase] goal counting failed user_id=%s err=%v", userID, err)
		}
	}
}

// IsConfirmationCode reports whether s has the shape of a confirmation code (6 digits).
func IsConfirmationCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func generateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
