package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"
)

// memStore is a transactional in-memory marketplace. Transact holds one lock for the
// whole callback, standing in for the row locks of the real store, and restores a
// snapshot when the callback fails.
type memStore struct {
	mu           sync.Mutex
	items        map[string]entities.Item
	reservations map[string]entities.Reservation
	queue        map[string][]entities.WaitingQueueEntry
	wallets      map[string]entities.Wallet
	ledger       []entities.Transaction
	refs         map[string]bool
	lockErrs     map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		items:        map[string]entities.Item{},
		reservations: map[string]entities.Reservation{},
		queue:        map[string][]entities.WaitingQueueEntry{},
		wallets:      map[string]entities.Wallet{},
		refs:         map[string]bool{},
	}
}

var (
	_ interfaces.IMarketplaceUnitOfWork = (*memStore)(nil)
	_ interfaces.IReservationRepository = (*memStore)(nil)
	_ interfaces.IMarketplaceTx         = (*memTx)(nil)
)

func (s *memStore) addItem(id, owner string, price float64) {
	s.items[id] = entities.Item{ID: id, Titulo: "item " + id, ValorGirinhas: price, Status: entities.ItemStatusDisponivel, PublicadoPor: owner}
}

func (s *memStore) fund(userID string, amount float64) {
	w := s.wallets[userID]
	w.UserID = userID
	w.SaldoAtual += amount
	s.wallets[userID] = w
}

func (s *memStore) balance(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.Round2(s.wallets[userID].SaldoAtual)
}

func (s *memStore) item(id string) entities.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *memStore) reservation(id string) entities.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reservations[id]
}

func (s *memStore) activeReservations(itemID string) []entities.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Reservation{}
	for _, r := range s.reservations {
		if r.ItemID == itemID && r.Status.IsActive() {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) queueOf(itemID string) []entities.WaitingQueueEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedQueue(s.queue[itemID])
}

func (s *memStore) ledgerOf(userID string, tipo entities.TransactionType) []entities.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []entities.Transaction{}
	for _, t := range s.ledger {
		if t.UserID == userID && t.Tipo == tipo {
			out = append(out, t)
		}
	}
	return out
}

func sortedQueue(entries []entities.WaitingQueueEntry) []entities.WaitingQueueEntry {
	out := append([]entities.WaitingQueueEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Posicao < out[j].Posicao })
	return out
}

type memSnapshot struct {
	items        map[string]entities.Item
	reservations map[string]entities.Reservation
	queue        map[string][]entities.WaitingQueueEntry
	wallets      map[string]entities.Wallet
	ledger       []entities.Transaction
	refs         map[string]bool
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		items:        map[string]entities.Item{},
		reservations: map[string]entities.Reservation{},
		queue:        map[string][]entities.WaitingQueueEntry{},
		wallets:      map[string]entities.Wallet{},
		ledger:       append([]entities.Transaction(nil), s.ledger...),
		refs:         map[string]bool{},
	}
	for k, v := range s.items {
		snap.items[k] = v
	}
	for k, v := range s.reservations {
		snap.reservations[k] = v
	}
	for k, v := range s.queue {
		snap.queue[k] = append([]entities.WaitingQueueEntry(nil), v...)
	}
	for k, v := range s.wallets {
		snap.wallets[k] = v
	}
	for k, v := range s.refs {
		snap.refs[k] = v
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.items = snap.items
	s.reservations = snap.reservations
	s.queue = snap.queue
	s.wallets = snap.wallets
	s.ledger = snap.ledger
	s.refs = snap.refs
}

func (s *memStore) Transact(ctx context.Context, fn func(tx interfaces.IMarketplaceTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	if err := fn(&memTx{s: s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) ListExpiredIDs(ctx context.Context, now time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expired := []entities.Reservation{}
	for _, r := range s.reservations {
		if r.IsExpired(now) {
			expired = append(expired, r)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].PrazoExpiracao.Before(expired[j].PrazoExpiracao) })
	ids := []string{}
	for i, r := range expired {
		if i >= limit {
			break
		}
		ids = append(ids, r.ID)
	}
	return ids, nil
}

func (s *memStore) CountCompletedExchanges(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.reservations {
		if r.Status == entities.ReservationStatusConfirmada && r.InvolvesUser(userID) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) GetQueueInfo(ctx context.Context, itemID, userID string) (entities.QueueInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := entities.QueueInfo{TotalFila: len(s.queue[itemID])}
	for _, e := range s.queue[itemID] {
		if e.UsuarioID == userID {
			info.PosicaoUsuario = e.Posicao
		}
	}
	return info, nil
}

type memTx struct {
	s *memStore
}

func (t *memTx) GetItemForUpdate(itemID string) (entities.Item, error) {
	return t.s.items[itemID], nil
}

func (t *memTx) UpdateItemStatus(itemID string, status entities.ItemStatus) error {
	item, ok := t.s.items[itemID]
	if !ok {
		return errors.New("item missing")
	}
	item.Status = status
	t.s.items[itemID] = item
	return nil
}

func (t *memTx) GetReservationForUpdate(reservationID string) (entities.Reservation, error) {
	if err := t.s.lockErrs[reservationID]; err != nil {
		return entities.Reservation{}, err
	}
	return t.s.reservations[reservationID], nil
}

func (t *memTx) GetActiveReservationByItem(itemID string) (entities.Reservation, error) {
	for _, r := range t.s.reservations {
		if r.ItemID == itemID && r.Status.IsActive() {
			return r, nil
		}
	}
	return entities.Reservation{}, nil
}

func (t *memTx) CreateReservation(r entities.Reservation) (entities.Reservation, error) {
	for _, other := range t.s.reservations {
		if other.ItemID == r.ItemID && other.Status.IsActive() {
			return entities.Reservation{}, errors.New("unique violation: active reservation")
		}
	}
	t.s.reservations[r.ID] = r
	return r, nil
}

func (t *memTx) UpdateReservation(r entities.Reservation) error {
	t.s.reservations[r.ID] = r
	return nil
}

func (t *memTx) ListQueue(itemID string) ([]entities.WaitingQueueEntry, error) {
	return sortedQueue(t.s.queue[itemID]), nil
}

func (t *memTx) CreateQueueEntry(e entities.WaitingQueueEntry) (entities.WaitingQueueEntry, error) {
	t.s.queue[e.ItemID] = append(t.s.queue[e.ItemID], e)
	return e, nil
}

func (t *memTx) DeleteQueueEntry(entryID string) error {
	for itemID, entries := range t.s.queue {
		for i, e := range entries {
			if e.ID == entryID {
				t.s.queue[itemID] = append(entries[:i:i], entries[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (t *memTx) ShiftQueueAfter(itemID string, position int) error {
	entries := t.s.queue[itemID]
	for i := range entries {
		if entries[i].Posicao > position {
			entries[i].Posicao--
		}
	}
	return nil
}

func (t *memTx) DeleteQueue(itemID string) error {
	delete(t.s.queue, itemID)
	return nil
}

func (t *memTx) GetWalletForUpdate(userID string) (entities.Wallet, error) {
	return t.s.wallets[userID], nil
}

func (t *memTx) ApplyTransaction(tr entities.Transaction) (bool, error) {
	if t.s.refs[tr.Referencia] {
		return false, nil
	}
	w := t.s.wallets[tr.UserID]
	w.UserID = tr.UserID
	w.SaldoAtual = entities.Round2(w.SaldoAtual + tr.Delta())
	if w.SaldoAtual < 0 {
		return false, errors.New("check violation: negative balance")
	}
	switch {
	case tr.Delta() > 0:
		w.TotalRecebido += tr.Valor
	case tr.Delta() < 0:
		w.TotalGasto += tr.Valor
	}
	t.s.wallets[tr.UserID] = w
	t.s.refs[tr.Referencia] = true
	t.s.ledger = append(t.s.ledger, tr)
	return true, nil
}
