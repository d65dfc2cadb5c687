package entities

import (
	"encoding/json"
	"time"
)

// PurchaseStatus represents the payment outcome of a Girinha purchase.

type PurchaseStatus string

const (
	PurchaseStatusPendente PurchaseStatus = "pendente"
	PurchaseStatusAprovado PurchaseStatus = "aprovado"
	PurchaseStatusNegado   PurchaseStatus = "negado"
)

// GirinhaPurchase is a purchase of Girinhas paid in BRL through Mercado Pago.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// MPPayloadRaw keeps the provider response for audit; MPPayload is its parsed form.
type GirinhaPurchase struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Quantidade int            `json:"quantidade"`
	ValorTotal float64        `json:"valor_total"`
	Date       time.Time      `json:"date"`
	Status     PurchaseStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
