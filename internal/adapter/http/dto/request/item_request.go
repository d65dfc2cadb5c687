package request

import (
	"strings"

	"giramae/internal/domain/entities"
)

type ItemCreateRequest struct {
	Titulo            string  `json:"titulo" binding:"required"`
	Categoria         string  `json:"categoria"`
	EstadoConservacao string  `json:"estado_conservacao"`
	ValorGirinhas     float64 `json:"valor_girinhas" binding:"required,gt=0"`
}

func (r ItemCreateRequest) ToEntity() entities.Item {
	return entities.Item{
		Titulo:            strings.TrimSpace(r.Titulo),
		Categoria:         strings.TrimSpace(r.Categoria),
		EstadoConservacao: strings.TrimSpace(r.EstadoConservacao),
		ValorGirinhas:     r.ValorGirinhas,
	}
}
