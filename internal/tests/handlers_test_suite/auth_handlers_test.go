package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	api "github.com/qbyten/site-api/internal/http"
	handler "github.com/qbyten/site-api/internal/http/handlers"
)

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      1,
		"username": "admin",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	return signed
}

func TestLoginHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		handler.CredentialsRequest{Username: "admin", Password: "secret"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Errorf("expected a token")
	}
	if resp.User.Username != "admin" || resp.User.ID == 0 {
		t.Errorf("expected the user profile, got %+v", resp.User)
	}
}

func TestLoginHandler_Rejections(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name       string
		payload    handler.CredentialsRequest
		expectCode int
	}{
		{name: "wrong password", payload: handler.CredentialsRequest{Username: "admin", Password: "nope"}, expectCode: http.StatusUnauthorized},
		{name: "unknown user", payload: handler.CredentialsRequest{Username: "ghost", Password: "secret"}, expectCode: http.StatusUnauthorized},
		{name: "missing password", payload: handler.CredentialsRequest{Username: "admin"}, expectCode: http.StatusBadRequest},
		{name: "missing username", payload: handler.CredentialsRequest{Password: "secret"}, expectCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/auth/login", tt.payload, false)
			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestLoginHandler_MethodNotAllowed(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/api/auth/login", nil, false)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestRegisterHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/api/auth/register",
		handler.CredentialsRequest{Username: "editor", Password: "longenough"}, false)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	// the fresh account can log in
	tok, err := generateToken(r, "editor", "longenough")
	if err != nil || tok == "" {
		t.Fatalf("expected the new user to log in, err=%v", err)
	}
}

func TestRegisterHandler_Validation(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name       string
		payload    handler.CredentialsRequest
		expectCode int
	}{
		{name: "short username", payload: handler.CredentialsRequest{Username: "ab", Password: "longenough"}, expectCode: http.StatusBadRequest},
		{name: "short password", payload: handler.CredentialsRequest{Username: "valid", Password: "short"}, expectCode: http.StatusBadRequest},
		{name: "missing both", payload: handler.CredentialsRequest{}, expectCode: http.StatusBadRequest},
		{name: "duplicate username", payload: handler.CredentialsRequest{Username: "admin", Password: "longenough"}, expectCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/auth/register", tt.payload, false)
			if w.Code != tt.expectCode {
				t.Errorf("expected %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestRegisterHandler_Disabled(t *testing.T) {
	handler.SetRegistrationEnabled(false)
	t.Cleanup(func() { handler.SetRegistrationEnabled(true) })
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/api/auth/register",
		handler.CredentialsRequest{Username: "intruder", Password: "longenough"}, false)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 while registration is disabled, got %d", w.Code)
	}
}

func TestVerifyHandler_Valid(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp handler.VerifyResult
	json.NewDecoder(w.Body).Decode(&resp)
	if !resp.Valid || resp.User == nil || resp.User.Username != "admin" {
		t.Errorf("expected a valid session for admin, got %+v", resp)
	}
}

func TestVerifyHandler_Expired(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp handler.VerifyResult
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Valid {
		t.Errorf("expected valid false for an expired token")
	}
}

func TestVerifyHandler_Garbage(t *testing.T) {
	r := api.NewRouter()

	for _, header := range []string{"", "Bearer not.a.token", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, w.Code)
		}
		var resp handler.VerifyResult
		json.NewDecoder(w.Body).Decode(&resp)
		if resp.Valid {
			t.Errorf("header %q: expected valid false", header)
		}
	}
}

func TestMutationWithExpiredToken(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	body := strings.NewReader(`{"slug":"late","title":"Late"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Authorization", "Bearer "+expiredToken(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an expired session, got %d", w.Code)
	}
	if productRepo.Count() != 0 {
		t.Errorf("rejected request must not create a row")
	}
}
