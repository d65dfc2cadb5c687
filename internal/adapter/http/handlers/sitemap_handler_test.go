package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"giramae/internal/adapter/http/handlers/mocks"
	"giramae/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestSitemapHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISitemapUseCase(ctrl)
	h := NewSitemapHandler(uc)

	r := newTestRouter("")
	r.GET("/api/sitemap/:name", h.Get)

	t.Run("unknown name", func(t *testing.T) {
		uc.EXPECT().Proxy(gomock.Any(), "unknown").Return(nil, usecase.ErrSitemapNotFound)

		w := perform(t, r, http.MethodGet, "/api/sitemap/unknown", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w.Body.String() != `{"error":"Sitemap not found"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		uc.EXPECT().Proxy(gomock.Any(), "posts").Return(nil, fmt.Errorf("%w: status 502", usecase.ErrSitemapUpstream))

		w := perform(t, r, http.MethodGet, "/api/sitemap/posts", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc.EXPECT().Proxy(gomock.Any(), "posts").Return([]byte("<urlset></urlset>"), nil)

		w := perform(t, r, http.MethodGet, "/api/sitemap/posts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/xml" {
			t.Fatalf("unexpected content type %q", got)
		}
		if got := w.Header().Get("Cache-Control"); got != "public, max-age=3600" {
			t.Fatalf("unexpected cache header %q", got)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		uc.EXPECT().Proxy(gomock.Any(), "tags").Return(nil, errors.New("boom"))
		if w := perform(t, r, http.MethodGet, "/api/sitemap/tags", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
