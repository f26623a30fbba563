package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/qbyten/site-api/internal/http"
	handler "github.com/qbyten/site-api/internal/http/handlers"
)

func TestPreflightShortCircuits(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive CORS origin, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Errorf("Authorization must be an allowed header, got %q", got)
	}
}

func TestCORSHeadersOnRejections(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS headers must be present on rejections too, got %q", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("rejections must carry a JSON body, got content type %q", ct)
	}
}

func TestPublicReadsBypassAuth(t *testing.T) {
	r := api.NewRouter()

	for _, path := range []string{"/api/health", "/api/products", "/api/services", "/api/settings", "/api/menus"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s should not need credentials, got %d", path, w.Code)
		}
	}
}

func TestRawTokenFallbacks(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	// Authorization without the Bearer prefix
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"slug":"raw","title":"Raw"}`))
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("expected a raw Authorization token to be accepted, got %d", w.Code)
	}

	// X-Admin-Token fallback header
	req = httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"slug":"fallback","title":"Fallback"}`))
	req.Header.Set("X-Admin-Token", token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Errorf("expected the X-Admin-Token fallback to be accepted, got %d", w.Code)
	}
}

func TestStoreUnavailableReports501(t *testing.T) {
	handler.SetProductRepo(nil)
	t.Cleanup(func() { handler.SetProductRepo(productRepo) })
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/api/products", nil, false)
	if w.Code != http.StatusNotImplemented {
		t.Errorf("expected 501 when the store binding is missing, got %d", w.Code)
	}
}

func TestUnknownPathIsJSON404(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/api/unknown", nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
