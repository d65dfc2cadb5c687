package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestFunctionsHandler_ProcessExpiredReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	reservations := mocks.NewMockIReservationUseCase(ctrl)
	h := NewFunctionsHandler(reservations, mocks.NewMockISitemapUseCase(ctrl))

	r := newTestRouter("")
	r.POST("/functions/v1/process-expired-reservations", h.ProcessExpiredReservations)

	t.Run("success", func(t *testing.T) {
		reservations.EXPECT().ProcessExpiredBatch(gomock.Any(), 0).Return(3, nil)

		w := perform(t, r, http.MethodPost, "/functions/v1/process-expired-reservations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["processed_count"] != float64(3) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body["error"]; ok {
			t.Fatalf("success must not carry error: %s", w.Body.String())
		}
	})

	t.Run("failure", func(t *testing.T) {
		reservations.EXPECT().ProcessExpiredBatch(gomock.Any(), 25).Return(1, errors.New("db down"))

		w := perform(t, r, http.MethodPost, "/functions/v1/process-expired-reservations", `{"batch_size":25}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["error"] != "db down" || body["processed_count"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFunctionsHandler_GenerateSitemap(t *testing.T) {
	ctrl := gomock.NewController(t)
	sitemaps := mocks.NewMockISitemapUseCase(ctrl)
	h := NewFunctionsHandler(mocks.NewMockIReservationUseCase(ctrl), sitemaps)

	r := newTestRouter("")
	for _, name := range []string{"static", "posts", "bogus"} {
		r.GET("/functions/v1/sitemap-"+name, h.GenerateSitemap(name))
	}

	sitemaps.EXPECT().Generate(gomock.Any(), "static").Return(usecase.Sitemap{Body: []byte("<urlset/>"), MaxAge: 24 * time.Hour}, nil)
	w := perform(t, r, http.MethodGet, "/functions/v1/sitemap-static", "")
	if w.Code != http.StatusOK || w.Body.String() != "<urlset/>" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=86400" {
		t.Fatalf("unexpected cache header %q", got)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}

	sitemaps.EXPECT().Generate(gomock.Any(), "posts").Return(usecase.Sitemap{}, errors.New("db down"))
	if w := perform(t, r, http.MethodGet, "/functions/v1/sitemap-posts", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	sitemaps.EXPECT().Generate(gomock.Any(), "bogus").Return(usecase.Sitemap{}, usecase.ErrSitemapNotFound)
	if w := perform(t, r, http.MethodGet, "/functions/v1/sitemap-bogus", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
