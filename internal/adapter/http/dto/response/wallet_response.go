package response

import (
	"time"

	"giramae/internal/domain/entities"
)

type WalletResponse struct {
	UserID        string    `json:"user_id"`
	SaldoAtual    float64   `json:"saldo_atual"`
	TotalRecebido float64   `json:"total_recebido"`
	TotalGasto    float64   `json:"total_gasto"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromWallet(w entities.Wallet) WalletResponse {
	return WalletResponse{
		UserID:        w.UserID,
		SaldoAtual:    w.SaldoAtual,
		TotalRecebido: w.TotalRecebido,
		TotalGasto:    w.TotalGasto,
		UpdatedAt:     w.UpdatedAt,
	}
}

type TransactionResponse struct {
	ID         string    `json:"id"`
	Tipo       string    `json:"tipo"`
	Valor      float64   `json:"valor"`
	Descricao  string    `json:"descricao"`
	Referencia string    `json:"referencia"`
	ReservaID  *string   `json:"reserva_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromTransactions(list []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, TransactionResponse{
			ID:         t.ID,
			Tipo:       string(t.Tipo),
			Valor:      t.Valor,
			Descricao:  t.Descricao,
			Referencia: t.Referencia,
			ReservaID:  t.ReservaID,
			CreatedAt:  t.CreatedAt,
		})
	}
	return out
}
