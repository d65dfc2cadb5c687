package entities

import (
	"math"
	"time"
)

// TransactionType classifies ledger entries (transacoes).
type TransactionType string

const (
	TransactionBloqueioReserva  TransactionType = "bloqueio_reserva"
	TransactionReembolsoReserva TransactionType = "reembolso_reserva"
	TransactionRecebidoTroca    TransactionType = "recebido_troca"
	TransactionTaxaQueimada     TransactionType = "taxa_queimada"
	TransactionBonusMeta        TransactionType = "bonus_meta"
	TransactionCompra           TransactionType = "compra"
)

// Sign is the direction the entry moves the balance: +1 credit, -1 debit,
// 0 for audit-only entries (burned fees).
func (t TransactionType) Sign() float64 {
	switch t {
	case TransactionBloqueioReserva:
		return -1
	case TransactionReembolsoReserva, TransactionRecebidoTroca, TransactionBonusMeta, TransactionCompra:
		return 1
	default:
		return 0
	}
}

// Wallet (carteira) is a user's Girinha balance.
type Wallet struct {
	UserID        string    `json:"user_id"`
	SaldoAtual    float64   `json:"saldo_atual"`
	TotalRecebido float64   `json:"total_recebido"`
	TotalGasto    float64   `json:"total_gasto"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (w Wallet) CanAfford(amount float64) bool {
	return w.SaldoAtual+1e-9 >= amount
}

// Transaction is one ledger entry. Referencia is unique: applying the same
// reference twice is a no-op, which keeps credits exactly-once under retries.
type Transaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Tipo       TransactionType `json:"tipo"`
	Valor      float64         `json:"valor"`
	Descricao  string          `json:"descricao"`
	Referencia string          `json:"referencia"`
	ReservaID  *string         `json:"reserva_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Delta is the signed amount applied to the wallet balance.
func (t Transaction) Delta() float64 {
	return t.Tipo.Sign() * t.Valor
}

// SplitFee splits a price into the seller credit and the burned marketplace fee.
// Amounts are rounded to cents.
func SplitFee(price, feePercent float64) (credited, fee float64) {
	fee = Round2(price * feePercent / 100)
	credited = Round2(price - fee)
	return credited, fee
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
