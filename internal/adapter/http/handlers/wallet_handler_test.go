package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestWalletHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWalletUseCase(ctrl)
	h := NewWalletHandler(uc)

	r := newTestRouter("user-1")
	r.GET("/v1/wallet", h.GetWallet)
	r.GET("/v1/wallet/transactions", h.ListTransactions)

	t.Run("wallet", func(t *testing.T) {
		uc.EXPECT().GetWallet(gomock.Any(), "user-1").Return(entities.Wallet{UserID: "user-1", SaldoAtual: 42.5}, nil)

		w := perform(t, r, http.MethodGet, "/v1/wallet", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["saldo_atual"] != 42.5 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("transactions with limit", func(t *testing.T) {
		uc.EXPECT().ListTransactions(gomock.Any(), "user-1", 10).Return([]entities.Transaction{
			{ID: "t1", UserID: "user-1", Tipo: entities.TransactionRecebidoTroca, Valor: 18, Referencia: "troca:res-1:vendedor", CreatedAt: time.Now()},
		}, nil)

		w := perform(t, r, http.MethodGet, "/v1/wallet/transactions?limit=10", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["tipo"] != string(entities.TransactionRecebidoTroca) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		if w := perform(t, r, http.MethodGet, "/v1/wallet/transactions?limit=abc", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
