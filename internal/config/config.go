package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the configuration for the application.
type Config struct {
	Port         string
	DatabasePath string
	Environment  string
	FrontendURL  string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// External AI agent service
	AIAgentURL     string
	AIAgentTimeout time.Duration
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	aiAgentURL := os.Getenv("AI_AGENT_URL")
	if aiAgentURL == "" {
		return nil, fmt.Errorf("AI_AGENT_URL environment variable not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	jwtTTL := 7 * 24 * time.Hour
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("JWT_TTL_HOURS must be a positive integer, got %q", raw)
		}
		jwtTTL = time.Duration(hours) * time.Hour
	}

	// The agent may fetch auxiliary media per meal, so the default is generous.
	aiAgentTimeout := 2 * time.Minute
	if raw := os.Getenv("AI_AGENT_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("AI_AGENT_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}
		aiAgentTimeout = time.Duration(seconds) * time.Second
	}

	return &Config{
		Port:           port,
		DatabasePath:   databasePath,
		Environment:    environment,
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		JWTSecret:      jwtSecret,
		JWTTTL:         jwtTTL,
		AIAgentURL:     aiAgentURL,
		AIAgentTimeout: aiAgentTimeout,
	}, nil
}

// IsDevelopment reports whether the app runs in a development-like mode.
// Raw upstream payloads and error details are only surfaced when true.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
