package web_test

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/robinspt/food-inventory-system/pkg/web"
)

//go:embed testdata/static/*
var staticFS embed.FS

func TestDistServer(t *testing.T) {
	handler := web.DistServer(staticFS, "testdata/static", "/dist/")

	tests := []struct {
		path   string
		status int
	}{
		{"/dist/app.js", http.StatusOK},
		{"/dist/nonexistent.js", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

func TestPublicFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.PublicFile(staticFS, "testdata/static", "test.txt")(w, httptest.NewRequest(http.MethodGet, "/test.txt", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(w.Result().Body)
	if !strings.Contains(string(body), "test content") {
		t.Error("response body does not contain expected content")
	}

	w = httptest.NewRecorder()
	web.PublicFile(staticFS, "testdata/static", "missing.txt")(w, httptest.NewRequest(http.MethodGet, "/missing.txt", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing file status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPublicFileRoutes(t *testing.T) {
	routes := web.PublicFileRoutes(staticFS, "testdata/static", "test.txt", "app.js")

	if len(routes) != 2 {
		t.Fatalf("PublicFileRoutes() returned %d routes, want 2", len(routes))
	}

	for i, want := range []string{"/test.txt", "/app.js"} {
		if routes[i].Method != http.MethodGet {
			t.Errorf("route %d: Method = %q, want GET", i, routes[i].Method)
		}
		if routes[i].Pattern != want {
			t.Errorf("route %d: Pattern = %q, want %q", i, routes[i].Pattern, want)
		}
	}
}

func TestServeEmbeddedFile(t *testing.T) {
	w := httptest.NewRecorder()
	web.ServeEmbeddedFile([]byte("hello world"), "text/plain")(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if ct := w.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if w.Body.String() != "hello world" {
		t.Errorf("body = %q, want hello world", w.Body.String())
	}
}
