package response

import (
	"time"

	"giramae/internal/domain/entities"
)

type GoalResponse struct {
	TipoMeta          string     `json:"tipo_meta"`
	TrocasNecessarias int        `json:"trocas_necessarias"`
	GirinhasBonus     float64    `json:"girinhas_bonus"`
	Conquistado       bool       `json:"conquistado"`
	DataConquista     *time.Time `json:"data_conquista,omitempty"`
	Progresso         float64    `json:"progresso"`
}

type GoalBoardResponse struct {
	Metas             []GoalResponse `json:"metas"`
	TrocasCompletadas int            `json:"trocas_completadas"`
	ProximaMeta       *GoalResponse  `json:"proxima_meta,omitempty"`
	TotalBonus        float64        `json:"total_bonus"`
}

func FromGoalBoard(b entities.GoalBoard) GoalBoardResponse {
	res := GoalBoardResponse{
		Metas:             make([]GoalResponse, 0, len(b.Goals)),
		TrocasCompletadas: b.CompletedExchanges,
		TotalBonus:        b.TotalBonusEarned(),
	}
	for _, g := range b.Goals {
		res.Metas = append(res.Metas, goalResponse(b, g))
	}
	if next, ok := b.NextGoal(); ok {
		g := goalResponse(b, next)
		res.ProximaMeta = &g
	}
	return res
}

func goalResponse(b entities.GoalBoard, g entities.Goal) GoalResponse {
	return GoalResponse{
		TipoMeta:          string(g.TipoMeta),
		TrocasNecessarias: g.TrocasNecessarias,
		GirinhasBonus:     g.GirinhasBonus,
		Conquistado:       g.Conquistado,
		DataConquista:     g.DataConquista,
		Progresso:         b.Progress(g.TipoMeta),
	}
}
