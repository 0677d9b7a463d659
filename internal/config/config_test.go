package config

import (
	"os"
	"testing"
	"time"
)

func TestNewFromEnv(t *testing.T) {
	setRequired := func(t *testing.T) {
		t.Helper()
		t.Setenv("DATABASE_PATH", "/tmp/meal-optimizer.db")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("AI_AGENT_URL", "http://agent.test")
	}

	t.Run("Success", func(t *testing.T) {
		setRequired(t)
		t.Setenv("PORT", "9000")
		t.Setenv("ENVIRONMENT", "production")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.DatabasePath != "/tmp/meal-optimizer.db" {
			t.Errorf("Expected DatabasePath '/tmp/meal-optimizer.db', got '%s'", cfg.DatabasePath)
		}
		if cfg.Port != "9000" {
			t.Errorf("Expected Port '9000', got '%s'", cfg.Port)
		}
		if cfg.AIAgentURL != "http://agent.test" {
			t.Errorf("Expected AIAgentURL 'http://agent.test', got '%s'", cfg.AIAgentURL)
		}
		if cfg.IsDevelopment() {
			t.Error("Expected IsDevelopment to be false in production")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("PORT")
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("AI_AGENT_TIMEOUT_SECONDS")
		os.Unsetenv("JWT_TTL_HOURS")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.Port != "5000" {
			t.Errorf("Expected default port '5000', got '%s'", cfg.Port)
		}
		if !cfg.IsDevelopment() {
			t.Error("Expected development mode by default")
		}
		if cfg.AIAgentTimeout != 2*time.Minute {
			t.Errorf("Expected default agent timeout of 2m, got %v", cfg.AIAgentTimeout)
		}
		if cfg.JWTTTL != 7*24*time.Hour {
			t.Errorf("Expected default JWT TTL of 168h, got %v", cfg.JWTTTL)
		}
	})

	t.Run("MissingDatabasePath", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("DATABASE_PATH")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing DATABASE_PATH, got nil")
		}
		expectedError := "DATABASE_PATH environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("MissingJWTSecret", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("JWT_SECRET")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing JWT_SECRET, got nil")
		}
	})

	t.Run("MissingAgentURL", func(t *testing.T) {
		setRequired(t)
		os.Unsetenv("AI_AGENT_URL")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing AI_AGENT_URL, got nil")
		}
	})

	t.Run("CustomTimeout", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AI_AGENT_TIMEOUT_SECONDS", "30")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.AIAgentTimeout != 30*time.Second {
			t.Errorf("Expected agent timeout of 30s, got %v", cfg.AIAgentTimeout)
		}
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		setRequired(t)
		t.Setenv("AI_AGENT_TIMEOUT_SECONDS", "soon")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for invalid AI_AGENT_TIMEOUT_SECONDS, got nil")
		}
	})
}
