package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/ayushhh101/meal-optimizer-backend/internal/agent"
	"github.com/ayushhh101/meal-optimizer-backend/internal/auth"
	"github.com/ayushhh101/meal-optimizer-backend/internal/config"
	"github.com/ayushhh101/meal-optimizer-backend/internal/database"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/metrics"
	"github.com/ayushhh101/meal-optimizer-backend/internal/planner"
	"github.com/ayushhh101/meal-optimizer-backend/internal/server"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

func main() {
	// A missing .env is fine in production; variables come from the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userRepo := user.NewRepository(db.SQL)
	planRepo := mealplan.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	// Agent metrics only feed the health view's 7-day summary; anything
	// older than 30 days is dead weight.
	if err := metricsStore.Cleanup(context.Background(), 30); err != nil {
		log.Printf("Failed to clean up agent metrics: %v", err)
	}

	agentClient := agent.NewClient(cfg.AIAgentURL, cfg.AIAgentTimeout)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(userRepo, tokens)
	plannerService := planner.NewService(planRepo, userRepo, agentClient, metricsStore)

	srv := server.New(cfg, authService, tokens, userRepo, plannerService, metricsStore)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Meal Optimizer API listening on :%s (environment: %s)", cfg.Port, cfg.Environment)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
