package sitemap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpstreamClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer anon" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/functions/v1/sitemap-posts":
			w.Header().Set("Content-Type", "application/xml")
			_, _ = w.Write([]byte("<urlset></urlset>"))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c := NewUpstreamClient(srv.URL+"/functions/v1/", "anon")

	body, err := c.Fetch(context.Background(), "posts")
	if err != nil || string(body) != "<urlset></urlset>" {
		t.Fatalf("unexpected body %q err=%v", body, err)
	}
	if _, err := c.Fetch(context.Background(), "tags"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}

func TestUpstreamClient_NotConfigured(t *testing.T) {
	if _, err := NewUpstreamClient("", "").Fetch(context.Background(), "posts"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestUpstreamClient_RejectsOversizedSitemap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<urlset><url><loc>https://giramae.com.br/</loc></url></urlset>"))
	}))
	defer srv.Close()

	c := NewUpstreamClient(srv.URL, "")
	c.maxBytes = 16
	if _, err := c.Fetch(context.Background(), "posts"); !errors.Is(err, ErrSitemapTooLarge) {
		t.Fatalf("expected ErrSitemapTooLarge, got %v", err)
	}

	c.maxBytes = 1 << 10
	if body, err := c.Fetch(context.Background(), "posts"); err != nil || len(body) == 0 {
		t.Fatalf("expected body within limit, got %q err=%v", body, err)
	}
}
