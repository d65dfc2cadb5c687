package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestGoalHandler_GetBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIGoalUseCase(ctrl)
	h := NewGoalHandler(uc)

	r := newTestRouter("user-1")
	r.GET("/v1/goals", h.GetBoard)

	goals := []entities.Goal{
		{UserID: "user-1", TipoMeta: entities.GoalTierBronze, TrocasNecessarias: 5, GirinhasBonus: 10, Conquistado: true},
		{UserID: "user-1", TipoMeta: entities.GoalTierPrata, TrocasNecessarias: 15, GirinhasBonus: 25},
	}
	uc.EXPECT().GetBoard(gomock.Any(), "user-1").Return(entities.NewGoalBoard(goals, 6), nil)

	w := perform(t, r, http.MethodGet, "/v1/goals", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Metas             []map[string]any `json:"metas"`
		TrocasCompletadas int              `json:"trocas_completadas"`
		ProximaMeta       map[string]any   `json:"proxima_meta"`
		TotalBonus        float64          `json:"total_bonus"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Metas) != 2 || body.TrocasCompletadas != 6 || body.TotalBonus != 10 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if body.ProximaMeta["tipo_meta"] != "prata" {
		t.Fatalf("expected prata as next goal, got %s", w.Body.String())
	}

	uc.EXPECT().GetBoard(gomock.Any(), "user-1").Return(entities.GoalBoard{}, errors.New("dynamo throttled"))
	w = perform(t, r, http.MethodGet, "/v1/goals", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
