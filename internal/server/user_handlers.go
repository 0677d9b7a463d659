package server

import (
	"net/http"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetByID(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if u == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": u})
}

type updateProfileRequest struct {
	Name     *string        `json:"name"`
	Budget   *float64       `json:"budget"`
	Location *user.Location `json:"location"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	userID := userIDFrom(r.Context())
	current, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if current == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}

	// Absent fields keep their stored values.
	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	budget := current.Budget
	if req.Budget != nil {
		budget = *req.Budget
	}
	location := current.Location
	if req.Location != nil {
		location = *req.Location
	}

	if len(name) < 2 || len(name) > 100 {
		s.writeError(w, apperr.New(apperr.KindValidation, "Name must be between 2 and 100 characters"))
		return
	}
	if budget < 0 || budget > 10000 {
		s.writeError(w, apperr.New(apperr.KindValidation, "Budget must be between 0 and 10000"))
		return
	}

	updated, err := s.users.UpdateProfile(r.Context(), userID, name, budget, location, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Profile updated successfully",
		"user":    updated,
	})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetByID(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if u == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "preferences": u.Preferences})
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req mealplan.Preferences
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	userID := userIDFrom(r.Context())
	current, err := s.users.GetByID(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if current == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}

	// Merge: absent arrays keep their stored values, present ones
	// replace them wholesale.
	merged := current.Preferences
	if req.Cuisines != nil {
		merged.Cuisines = req.Cuisines
	}
	if req.Goals != nil {
		merged.Goals = req.Goals
	}
	if req.Allergies != nil {
		merged.Allergies = req.Allergies
	}
	if req.DietaryRestrictions != nil {
		merged.DietaryRestrictions = req.DietaryRestrictions
	}

	updated, err := s.users.UpdatePreferences(r.Context(), userID, merged, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if updated == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Preferences updated successfully",
		"preferences": updated.Preferences,
	})
}

type updateBudgetRequest struct {
	Budget *float64 `json:"budget"`
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req updateBudgetRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Budget == nil || *req.Budget < 0 {
		s.writeError(w, apperr.New(apperr.KindValidation, "Valid budget is required (must be non-negative)"))
		return
	}

	updated, err := s.users.UpdateBudget(r.Context(), userIDFrom(r.Context()), *req.Budget, time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if updated == nil {
		s.writeError(w, apperr.New(apperr.KindNotFound, "User not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Budget updated successfully",
		"budget":  updated.Budget,
	})
}

func (s *Server) handleDeactivateAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Deactivate(r.Context(), userIDFrom(r.Context()), time.Now()); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Account deactivated successfully",
	})
}
