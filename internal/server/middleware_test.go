package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/auth"
	"github.com/ayushhh101/meal-optimizer-backend/internal/config"
)

func newTestRouter(t *testing.T) (http.Handler, *auth.TokenManager) {
	t.Helper()
	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		AIAgentTimeout: time.Second,
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	return New(cfg, nil, tokens, nil, nil, nil).Router(), tokens
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newTestRouter(t)

	t.Run("MissingToken", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/users/profile", nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode error body: %v", err)
		}
		if resp.Success {
			t.Error("Expected success=false")
		}
		if resp.Error != "unauthenticated" {
			t.Errorf("error = %q, want unauthenticated", resp.Error)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, err := tokens.Issue("user-1", "a@example.com", "Ayush", time.Now().Add(-2*time.Hour))
		if err != nil {
			t.Fatalf("Failed to issue token: %v", err)
		}
		req := httptest.NewRequest("GET", "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}

func TestHealthIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.Status != "OK" {
		t.Errorf("status = %q, want OK", resp.Status)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/auth/login", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want * when no frontend URL is set", got)
	}
}
