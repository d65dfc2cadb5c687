package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/domain/entities"
	"giramae/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPurchaseRouter(t *testing.T) (*mocks.MockIGirinhaPurchaseUseCase, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIGirinhaPurchaseUseCase(ctrl)
	h := NewGirinhaPurchaseHandler(uc)

	r := newTestRouter("buyer")
	r.POST("/v1/girinhas/purchases", h.Create)
	r.GET("/v1/girinhas/purchases", h.List)
	r.GET("/v1/girinhas/purchases/:purchase_id", h.GetByID)
	return uc, r
}

func TestGirinhaPurchaseHandler_Create(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		_, r := newPurchaseRouter(t)
		w := perform(t, r, http.MethodPost, "/v1/girinhas/purchases", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quantidade", func(t *testing.T) {
		_, r := newPurchaseRouter(t)
		w := perform(t, r, http.MethodPost, "/v1/girinhas/purchases", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		uc, r := newPurchaseRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "buyer", 50, gomock.Any()).Return(entities.GirinhaPurchase{}, usecase.ErrPaymentGatewayUnauthorized)

		w := perform(t, r, http.MethodPost, "/v1/girinhas/purchases", `{"quantidade":50,"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, r := newPurchaseRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "buyer", 50, json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.GirinhaPurchase{ID: "pur-1", UserID: "buyer", Quantidade: 50, ValorTotal: 50, Date: now, Status: entities.PurchaseStatusAprovado}, nil)

		w := perform(t, r, http.MethodPost, "/v1/girinhas/purchases", `{"quantidade":50,"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pur-1" || body["status"] != "aprovado" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mock mode tolerates a null payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		uc, r := newPurchaseRouter(t)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "buyer", 10, json.RawMessage("{}")).
			Return(entities.GirinhaPurchase{ID: "pur-2", UserID: "buyer", Quantidade: 10, Status: entities.PurchaseStatusAprovado}, nil)

		w := perform(t, r, http.MethodPost, "/v1/girinhas/purchases", `{"quantidade":10,"mp_payload":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestGirinhaPurchaseHandler_GetAndList(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, r := newPurchaseRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "buyer", "pur-9").Return(entities.GirinhaPurchase{}, usecase.ErrGirinhaPurchaseNotFound)

		if w := perform(t, r, http.MethodGet, "/v1/girinhas/purchases/pur-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		uc, r := newPurchaseRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "buyer", "pur-1").Return(entities.GirinhaPurchase{}, errors.New("throttled"))

		if w := perform(t, r, http.MethodGet, "/v1/girinhas/purchases/pur-1", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		uc, r := newPurchaseRouter(t)
		uc.EXPECT().ListByUserID(gomock.Any(), "buyer").Return([]entities.GirinhaPurchase{{ID: "a"}, {ID: "b"}}, nil)

		w := perform(t, r, http.MethodGet, "/v1/girinhas/purchases", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestReadPurchaseRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readPurchaseRequest(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readPurchaseRequest(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	if _, err := readPurchaseRequest(makeCtx("   ")); err == nil {
		t.Fatalf("expected empty body error")
	}

	if _, err := readPurchaseRequest(makeCtx(`{"quantidade":0}`)); err == nil {
		t.Fatalf("expected quantidade validation error")
	}

	req, err := readPurchaseRequest(makeCtx(`{"quantidade":5,"mp_payload":null}`))
	if err == nil || req.Quantidade != 5 {
		t.Fatalf("expected mp_payload empty error keeping quantidade, got %+v err=%v", req, err)
	}

	req, err = readPurchaseRequest(makeCtx(`{"quantidade":5}`))
	if err != nil || string(req.MPPayload) != "{}" {
		t.Fatalf("expected {} payload, got %s err=%v", req.MPPayload, err)
	}

	req, err = readPurchaseRequest(makeCtx(`{"quantidade":5,"mp_payload":{"a":1}}`))
	if err != nil || string(req.MPPayload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", req.MPPayload, err)
	}
}

func TestMapGirinhaPurchaseError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPurchaseQuantity, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrGirinhaPurchaseNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapGirinhaPurchaseError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
