package response

import (
	"time"

	"giramae/internal/domain/entities"
)

type GirinhaPurchaseResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Quantidade int       `json:"quantidade"`
	ValorTotal float64   `json:"valor_total"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromGirinhaPurchase(p entities.GirinhaPurchase) GirinhaPurchaseResponse {
	return GirinhaPurchaseResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Quantidade:   p.Quantidade,
		ValorTotal:   p.ValorTotal,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromGirinhaPurchases(list []entities.GirinhaPurchase) []GirinhaPurchaseResponse {
	out := make([]GirinhaPurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromGirinhaPurchase(p))
	}
	return out
}
