package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/auth"
	"github.com/ayushhh101/meal-optimizer-backend/internal/config"
	"github.com/ayushhh101/meal-optimizer-backend/internal/database"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

func TestUpdatePreferencesForVanishedUser(t *testing.T) {
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Environment:    "test",
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		AIAgentTimeout: time.Second,
	}
	users := user.NewRepository(db.SQL)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	router := New(cfg, nil, tokens, users, nil, nil).Router()

	u, err := users.Create(context.Background(), "Ayush", "a@example.com", "not-a-real-hash", time.Now())
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	token, err := tokens.Issue(u.ID, u.Email, u.Name, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	// The token outlives the row.
	if _, err := db.SQL.Exec("DELETE FROM users WHERE id = ?", u.ID); err != nil {
		t.Fatalf("Failed to delete user row: %v", err)
	}

	req := httptest.NewRequest("PUT", "/api/users/preferences", strings.NewReader(`{"cuisines":["Indian"]}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 for a vanished user", rec.Code)
	}
}
