package entities

import "time"

// ReservationStatus represents the lifecycle of a reservation (reserva).
//
// pendente is the only non-terminal status. At most one reservation per item may be
// pendente or confirmada at any time; additional requesters wait in the item's queue.

type ReservationStatus string

const (
	ReservationStatusPendente   ReservationStatus = "pendente"
	ReservationStatusConfirmada ReservationStatus = "confirmada"
	ReservationStatusCancelada  ReservationStatus = "cancelada"
	ReservationStatusExpirada   ReservationStatus = "expirada"
)

// IsActive reports whether the status holds the item.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusPendente || s == ReservationStatusConfirmada
}

// Reservation binds one requester to one item until the exchange is confirmed,
// cancelled or expires.
//
// ValorGirinhas is the item price at reservation time; it is the amount blocked
// from the requester's wallet and the base for the seller credit.
type Reservation struct {
	ID                string            `json:"id"`
	ItemID            string            `json:"item_id"`
	UsuarioReservou   string            `json:"usuario_reservou"`
	UsuarioItem       string            `json:"usuario_item"`
	ValorGirinhas     float64           `json:"valor_girinhas"`
	Status            ReservationStatus `json:"status"`
	CodigoConfirmacao string            `json:"-"`
	PrazoExpiracao    time.Time         `json:"prazo_expiracao"`
	DataReserva       time.Time         `json:"data_reserva"`
	DataConfirmacao   *time.Time        `json:"data_confirmacao,omitempty"`
	DataCancelamento  *time.Time        `json:"data_cancelamento,omitempty"`
}

func (r Reservation) IsExpired(now time.Time) bool {
	return r.Status == ReservationStatusPendente && !r.PrazoExpiracao.After(now)
}

// InvolvesUser reports whether userID is the requester or the item owner.
func (r Reservation) InvolvesUser(userID string) bool {
	return r.UsuarioReservou == userID || r.UsuarioItem == userID
}

// WaitingQueueEntry (fila_espera) holds a user's place in an item's waiting line.
// Positions per item are contiguous starting at 1, in arrival order.
type WaitingQueueEntry struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	UsuarioID string    `json:"usuario_id"`
	Posicao   int       `json:"posicao"`
	CreatedAt time.Time `json:"created_at"`
}

// QueueInfo is the queue summary for one item from one user's point of view.
// PosicaoUsuario is 0 when the user is not waiting.
type QueueInfo struct {
	TotalFila      int `json:"total_fila"`
	PosicaoUsuario int `json:"posicao_usuario"`
}

// RequestResult is the outcome of requesting an item: exactly one field is set.
type RequestResult struct {
	Reservation *Reservation
	QueueEntry  *WaitingQueueEntry
}

// ExchangeResult is the outcome of confirming a reservation with its code.
type ExchangeResult struct {
	ReservationID  string
	ItemID         string
	ValorCreditado float64
	TaxaQueimada   float64
}
