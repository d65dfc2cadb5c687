package response

import (
	"time"

	"giramae/internal/domain/entities"
)

type ItemResponse struct {
	ID                string    `json:"id"`
	Titulo            string    `json:"titulo"`
	Categoria         string    `json:"categoria,omitempty"`
	EstadoConservacao string    `json:"estado_conservacao,omitempty"`
	ValorGirinhas     float64   `json:"valor_girinhas"`
	Status            string    `json:"status"`
	PublicadoPor      string    `json:"publicado_por"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromItem(i entities.Item) ItemResponse {
	return ItemResponse{
		ID:                i.ID,
		Titulo:            i.Titulo,
		Categoria:         i.Categoria,
		EstadoConservacao: i.EstadoConservacao,
		ValorGirinhas:     i.ValorGirinhas,
		Status:            string(i.Status),
		PublicadoPor:      i.PublicadoPor,
		CreatedAt:         i.CreatedAt,
	}
}

// ReservationResponse carries the confirmation code only when built for the requester,
// who hands it to the owner at the meeting.
type ReservationResponse struct {
	ID                string     `json:"id"`
	ItemID            string     `json:"item_id"`
	UsuarioReservou   string     `json:"usuario_reservou"`
	UsuarioItem       string     `json:"usuario_item"`
	ValorGirinhas     float64    `json:"valor_girinhas"`
	Status            string     `json:"status"`
	CodigoConfirmacao string     `json:"codigo_confirmacao,omitempty"`
	PrazoExpiracao    time.Time  `json:"prazo_expiracao"`
	DataReserva       time.Time  `json:"data_reserva"`
	DataConfirmacao   *time.Time `json:"data_confirmacao,omitempty"`
	DataCancelamento  *time.Time `json:"data_cancelamento,omitempty"`
}

func FromReservation(r entities.Reservation, viewerID string) ReservationResponse {
	res := ReservationResponse{
		ID:               r.ID,
		ItemID:           r.ItemID,
		UsuarioReservou:  r.UsuarioReservou,
		UsuarioItem:      r.UsuarioItem,
		ValorGirinhas:    r.ValorGirinhas,
		Status:           string(r.Status),
		PrazoExpiracao:   r.PrazoExpiracao,
		DataReserva:      r.DataReserva,
		DataConfirmacao:  r.DataConfirmacao,
		DataCancelamento: r.DataCancelamento,
	}
	if viewerID != "" && viewerID == r.UsuarioReservou {
		res.CodigoConfirmacao = r.CodigoConfirmacao
	}
	return res
}

type QueueEntryResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	UsuarioID string    `json:"usuario_id"`
	Posicao   int       `json:"posicao"`
	CreatedAt time.Time `json:"created_at"`
}

func FromQueueEntry(e entities.WaitingQueueEntry) QueueEntryResponse {
	return QueueEntryResponse{
		ID:        e.ID,
		ItemID:    e.ItemID,
		UsuarioID: e.UsuarioID,
		Posicao:   e.Posicao,
		CreatedAt: e.CreatedAt,
	}
}

type QueueInfoResponse struct {
	TotalFila      int `json:"total_fila"`
	PosicaoUsuario int `json:"posicao_usuario"`
}

func FromQueueInfo(q entities.QueueInfo) QueueInfoResponse {
	return QueueInfoResponse{TotalFila: q.TotalFila, PosicaoUsuario: q.PosicaoUsuario}
}

func FromQueueInfoBatch(batch map[string]entities.QueueInfo) map[string]QueueInfoResponse {
	out := make(map[string]QueueInfoResponse, len(batch))
	for id, q := range batch {
		out[id] = FromQueueInfo(q)
	}
	return out
}

// FinalizarTrocaResponse is the finalizar_troca_com_codigo RPC body.
type FinalizarTrocaResponse struct {
	Sucesso        bool     `json:"sucesso"`
	Erro           string   `json:"erro,omitempty"`
	ValorCreditado *float64 `json:"valor_creditado,omitempty"`
	TaxaQueimada   *float64 `json:"taxa_queimada,omitempty"`
}

func FromExchangeResult(r entities.ExchangeResult) FinalizarTrocaResponse {
	credited, fee := r.ValorCreditado, r.TaxaQueimada
	return FinalizarTrocaResponse{Sucesso: true, ValorCreditado: &credited, TaxaQueimada: &fee}
}

// ProcessExpiredResponse is the body of the scheduled expiration endpoint.
type ProcessExpiredResponse struct {
	Success        bool   `json:"success"`
	ProcessedCount int    `json:"processed_count"`
	Error          string `json:"error,omitempty"`
}
