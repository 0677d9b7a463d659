package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
)

type generateWeeklyRequest struct {
	Name                string                `json:"name"`
	ForceRegenerate     bool                  `json:"forceRegenerate"`
	OverridePreferences *mealplan.Preferences `json:"overridePreferences"`
}

func (s *Server) handleGenerateWeekly(w http.ResponseWriter, r *http.Request) {
	var req generateWeeklyRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.planner.GetOrGenerate(r.Context(), userIDFrom(r.Context()), req.Name, req.OverridePreferences, req.ForceRegenerate)
	if err != nil {
		s.writeError(w, err)
		return
	}

	status := http.StatusOK
	if result.Source != "cache" {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{
		"success":  true,
		"source":   result.Source,
		"mealPlan": result.Plan,
	})
}

func (s *Server) handleCurrentWeek(w http.ResponseWriter, r *http.Request) {
	plan, err := s.planner.CurrentWeek(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "mealPlan": plan})
}

func (s *Server) handleListWeekly(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	plans, pagination, err := s.planner.List(r.Context(), userIDFrom(r.Context()), page, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"mealPlans":  plans,
		"pagination": pagination,
	})
}

func (s *Server) handleDeleteWeekly(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(chi.URLParam(r, "planID"), 10, 64)
	if err != nil {
		s.writeError(w, apperr.New(apperr.KindValidation, "Invalid plan id"))
		return
	}

	if err := s.planner.Delete(r.Context(), userIDFrom(r.Context()), planID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Meal plan deleted successfully",
	})
}

func (s *Server) handleTodayMeals(w http.ResponseWriter, r *http.Request) {
	view, err := s.planner.TodayMeals(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": view})
}

func (s *Server) handleTodayGroceryList(w http.ResponseWriter, r *http.Request) {
	view, err := s.planner.TodayGroceryList(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": view})
}

type toggleCompletionRequest struct {
	Day         string `json:"day"`
	MealType    string `json:"mealType"`
	IsCompleted bool   `json:"isCompleted"`
}

func (s *Server) handleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	var req toggleCompletionRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	meal, err := s.planner.ToggleCompletion(r.Context(), userIDFrom(r.Context()), req.Day, req.MealType, req.IsCompleted)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Meal completion updated",
		"meal":    meal,
	})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := s.planner.Insights(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"insights": insights,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":      "OK",
		"message":     "Meal Optimizer Backend is running!",
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": s.cfg.Environment,
	}
	if s.metrics != nil {
		if summary, err := s.metrics.Summary(r.Context(), 7); err == nil {
			resp["agentCalls"] = summary
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
