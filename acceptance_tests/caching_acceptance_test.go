package acceptance_tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/agent"
	"github.com/ayushhh101/meal-optimizer-backend/internal/auth"
	"github.com/ayushhh101/meal-optimizer-backend/internal/config"
	"github.com/ayushhh101/meal-optimizer-backend/internal/database"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/planner"
	"github.com/ayushhh101/meal-optimizer-backend/internal/server"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

// --- Mock AI Agent Service ---
// A stand-in for the external agent: an HTTP server returning one fixed
// weekly plan and counting how often it is asked to generate.
type mockAgent struct {
	generateCalls int
}

func (m *mockAgent) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/meal-plan/generate-weekly", func(w http.ResponseWriter, r *http.Request) {
		m.generateCalls++
		days := make([]mealplan.DayMeals, 0, 7)
		for d := time.Sunday; d <= time.Saturday; d++ {
			days = append(days, mealplan.DayMeals{
				Day: d.String(),
				Breakfast: &mealplan.Meal{
					Name: "Idli Sambar", Calories: 350, Protein: 12, Carbs: 65, Fat: 5,
					Ingredients: []string{"Rice", "Urad dal", "Tomato"},
				},
				Lunch: &mealplan.Meal{
					Name: "Paneer Curry", Calories: 650, Protein: 28, Carbs: 60, Fat: 25,
					Ingredients: []string{"Paneer", "Onion", "tomato"},
				},
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"mealPlans": []agent.PlanOption{{OptionName: "Balanced Week", Days: days}},
		})
	})
	mux.HandleFunc("/api/insights/generate", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"summary": "on track"})
	})
	return mux
}

// --- Acceptance Test ---
func TestFullWorkflow(t *testing.T) {
	// 1. Stand up the mock agent and a temporary database
	mock := &mockAgent{}
	agentSrv := httptest.NewServer(mock.handler())
	defer agentSrv.Close()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "acceptance.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// 2. Wire the application the way main does
	cfg := &config.Config{
		Port:           "0",
		Environment:    "test",
		JWTSecret:      "acceptance-secret",
		JWTTTL:         time.Hour,
		AIAgentURL:     agentSrv.URL,
		AIAgentTimeout: 10 * time.Second,
	}
	users := user.NewRepository(db.SQL)
	plans := mealplan.NewRepository(db.SQL)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	auths := auth.NewService(users, tokens)
	plannerSvc := planner.NewService(plans, users, agent.NewClient(cfg.AIAgentURL, cfg.AIAgentTimeout), nil)
	api := httptest.NewServer(server.New(cfg, auths, tokens, users, plannerSvc, nil).Router())
	defer api.Close()

	client := &apiClient{t: t, baseURL: api.URL}

	// --- 3. Step 1: Register and authenticate ---
	t.Log("--- Step 1: Registering ---")
	var registered struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	client.do("POST", "/api/auth/register", map[string]any{
		"name": "Ayush", "email": "ayush@example.com", "password": "secret123",
	}, http.StatusCreated, &registered)
	if registered.Token == "" {
		t.Fatal("Expected a session token from registration")
	}
	client.token = registered.Token

	// Requests without a token are rejected.
	client.token = ""
	client.do("GET", "/api/meal-plans/weekly/current", nil, http.StatusUnauthorized, nil)
	client.token = registered.Token

	// --- 4. Step 2: Generate a weekly plan ---
	t.Log("--- Step 2: Generating Weekly Plan ---")
	var generated struct {
		Source   string `json:"source"`
		MealPlan struct {
			ID         int64  `json:"id"`
			OptionName string `json:"optionName"`
		} `json:"mealPlan"`
	}
	client.do("POST", "/api/meal-plans/weekly/generate", map[string]any{"name": "Ayush"}, http.StatusCreated, &generated)
	if generated.Source != "generated" {
		t.Errorf("source = %q, want generated", generated.Source)
	}
	if mock.generateCalls != 1 {
		t.Fatalf("Expected 1 agent call, got %d", mock.generateCalls)
	}

	// --- 5. Step 3: Second request is served from the cache ---
	t.Log("--- Step 3: Cached Retrieval ---")
	var cached struct {
		Source   string `json:"source"`
		MealPlan struct {
			ID int64 `json:"id"`
		} `json:"mealPlan"`
	}
	client.do("POST", "/api/meal-plans/weekly/generate", map[string]any{"name": "Ayush"}, http.StatusOK, &cached)
	if cached.Source != "cache" {
		t.Errorf("source = %q, want cache", cached.Source)
	}
	if cached.MealPlan.ID != generated.MealPlan.ID {
		t.Errorf("Cache returned a different plan: %d != %d", cached.MealPlan.ID, generated.MealPlan.ID)
	}
	if mock.generateCalls != 1 {
		t.Errorf("Cache hit still called the agent: %d calls", mock.generateCalls)
	}

	// --- 6. Step 4: Forced regeneration goes back to the agent ---
	t.Log("--- Step 4: Forced Regeneration ---")
	var regenerated struct {
		Source string `json:"source"`
	}
	client.do("POST", "/api/meal-plans/weekly/generate", map[string]any{
		"name": "Ayush", "forceRegenerate": true,
	}, http.StatusCreated, &regenerated)
	if regenerated.Source != "regenerated" {
		t.Errorf("source = %q, want regenerated", regenerated.Source)
	}
	if mock.generateCalls != 2 {
		t.Errorf("Expected 2 agent calls after forced regeneration, got %d", mock.generateCalls)
	}

	// --- 7. Step 5: Derived views come from the cached record ---
	t.Log("--- Step 5: Today's Meals and Grocery List ---")
	var today struct {
		Data struct {
			Meals          []struct{ Name string } `json:"meals"`
			NutritionStats struct {
				Calories float64 `json:"calories"`
			} `json:"nutritionStats"`
		} `json:"data"`
	}
	client.do("GET", "/api/meal-plans/today", nil, http.StatusOK, &today)
	if len(today.Data.Meals) != 3 {
		t.Fatalf("Expected 3 meal slots, got %d", len(today.Data.Meals))
	}
	if today.Data.NutritionStats.Calories != 1000 {
		t.Errorf("Calories = %v, want 1000", today.Data.NutritionStats.Calories)
	}

	var groceries struct {
		Data struct {
			GroceryList struct {
				TotalItems int `json:"totalItems"`
			} `json:"groceryList"`
		} `json:"data"`
	}
	client.do("GET", "/api/meal-plans/today/grocery-list", nil, http.StatusOK, &groceries)
	// Rice, Urad dal, Tomato, Paneer, Onion after deduplication.
	if groceries.Data.GroceryList.TotalItems != 5 {
		t.Errorf("TotalItems = %d, want 5", groceries.Data.GroceryList.TotalItems)
	}

	// --- 8. Step 6: Delete hides the plan from subsequent reads ---
	t.Log("--- Step 6: Deleting the Plan ---")
	client.do("DELETE", fmt.Sprintf("/api/meal-plans/weekly/%d", generated.MealPlan.ID), nil, http.StatusOK, nil)
	client.do("GET", "/api/meal-plans/weekly/current", nil, http.StatusNotFound, nil)
}

// apiClient is a small helper around the JSON API.
type apiClient struct {
	t       *testing.T
	baseURL string
	token   string
}

func (c *apiClient) do(method, path string, body any, wantStatus int, out any) {
	c.t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			c.t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, &reqBody)
	if err != nil {
		c.t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		c.t.Fatalf("%s %s returned %d, want %d", method, path, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("Failed to decode %s %s response: %v", method, path, err)
		}
	}
}
