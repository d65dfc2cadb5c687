package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/domain/entities"
	"giramae/internal/usecase"

	"go.uber.org/mock/gomock"
)

func newRPCRouter(t *testing.T) (*mocks.MockIReservationUseCase, *mocks.MockIQueueUseCase, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reservations := mocks.NewMockIReservationUseCase(ctrl)
	queue := mocks.NewMockIQueueUseCase(ctrl)
	h := NewRPCHandler(reservations, queue)

	r := newTestRouter("seller")
	r.POST("/v1/rpc/obter_fila_espera", h.ObterFilaEspera)
	r.POST("/v1/rpc/finalizar_troca_com_codigo", h.FinalizarTrocaComCodigo)
	r.POST("/v1/rpc/processar_reservas_expiradas_batch", h.ProcessarReservasExpiradasBatch)
	return reservations, queue, r
}

func TestRPCHandler_ObterFilaEspera(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, queue, r := newRPCRouter(t)
		queue.EXPECT().GetQueueInfo(gomock.Any(), "item-1", "seller").Return(entities.QueueInfo{TotalFila: 2, PosicaoUsuario: 0}, nil)

		w := perform(t, r, http.MethodPost, "/v1/rpc/obter_fila_espera", `{"p_item_id":"item-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		_, _, r := newRPCRouter(t)
		w := perform(t, r, http.MethodPost, "/v1/rpc/obter_fila_espera", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		_, queue, r := newRPCRouter(t)
		queue.EXPECT().GetQueueInfo(gomock.Any(), "item-1", "seller").Return(entities.QueueInfo{}, errors.New("timeout"))

		w := perform(t, r, http.MethodPost, "/v1/rpc/obter_fila_espera", `{"p_item_id":"item-1"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["retryable"] != true {
			t.Fatalf("expected retryable body, got %s", w.Body.String())
		}
	})
}

func TestRPCHandler_FinalizarTrocaComCodigo(t *testing.T) {
	t.Run("credits the owner net of fee", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ConfirmWithCode(gomock.Any(), "res-1", "123456", "seller").
			Return(entities.ExchangeResult{ReservationID: "res-1", ValorCreditado: 18, TaxaQueimada: 2}, nil)

		w := perform(t, r, http.MethodPost, "/v1/rpc/finalizar_troca_com_codigo", `{"p_reserva_id":"res-1","p_codigo":"123456"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sucesso"] != true || body["valor_creditado"] != float64(18) || body["taxa_queimada"] != float64(2) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong code is a business failure", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ConfirmWithCode(gomock.Any(), "res-1", "000000", "seller").Return(entities.ExchangeResult{}, usecase.ErrInvalidConfirmationCode)

		w := perform(t, r, http.MethodPost, "/v1/rpc/finalizar_troca_com_codigo", `{"p_reserva_id":"res-1","p_codigo":"000000"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["sucesso"] != false || body["erro"] != "Código de confirmação inválido" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["valor_creditado"]; ok {
			t.Fatalf("failed exchange must not report a credit: %s", w.Body.String())
		}
	})

	t.Run("not owner reads as not found", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ConfirmWithCode(gomock.Any(), "res-1", "123456", "seller").Return(entities.ExchangeResult{}, usecase.ErrReservationNotFound)

		w := perform(t, r, http.MethodPost, "/v1/rpc/finalizar_troca_com_codigo", `{"p_reserva_id":"res-1","p_codigo":"123456"}`)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["erro"] != "Reserva não encontrada" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ConfirmWithCode(gomock.Any(), "res-1", "123456", "seller").Return(entities.ExchangeResult{}, errors.New("deadlock"))

		w := perform(t, r, http.MethodPost, "/v1/rpc/finalizar_troca_com_codigo", `{"p_reserva_id":"res-1","p_codigo":"123456"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestRPCHandler_ProcessarReservasExpiradasBatch(t *testing.T) {
	t.Run("empty body uses default", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ProcessExpiredBatch(gomock.Any(), 0).Return(4, nil)

		w := perform(t, r, http.MethodPost, "/v1/rpc/processar_reservas_expiradas_batch", "")
		if w.Code != http.StatusOK || w.Body.String() != "4" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty chunked body uses default", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ProcessExpiredBatch(gomock.Any(), 0).Return(2, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/rpc/processar_reservas_expiradas_batch", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/json")
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "2" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("explicit batch size", func(t *testing.T) {
		reservations, _, r := newRPCRouter(t)
		reservations.EXPECT().ProcessExpiredBatch(gomock.Any(), 10).Return(0, nil)

		w := perform(t, r, http.MethodPost, "/v1/rpc/processar_reservas_expiradas_batch", `{"batch_size":10}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		_, _, r := newRPCRouter(t)
		w := perform(t, r, http.MethodPost, "/v1/rpc/processar_reservas_expiradas_batch", `{"batch_size":-1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
