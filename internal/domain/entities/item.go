package entities

import "time"

// ItemStatus represents where a listed item is in the exchange lifecycle.
//
// Transitions only move forward (disponivel -> reservado -> trocado), except the
// rollback reservado -> disponivel when a reservation ends without anyone waiting.

type ItemStatus string

const (
	ItemStatusDisponivel ItemStatus = "disponivel"
	ItemStatusReservado  ItemStatus = "reservado"
	ItemStatusTrocado    ItemStatus = "trocado"
)

// Item is a good published by a user and priced in Girinhas.
type Item struct {
	ID                string     `json:"id"`
	Titulo            string     `json:"titulo"`
	Categoria         string     `json:"categoria"`
	EstadoConservacao string     `json:"estado_conservacao"`
	ValorGirinhas     float64    `json:"valor_girinhas"`
	Status            ItemStatus `json:"status"`
	PublicadoPor      string     `json:"publicado_por"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (i Item) IsOwnedBy(userID string) bool {
	return i.PublicadoPor == userID
}
