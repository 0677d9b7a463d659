// Package planner coordinates weekly meal plan generation: cache lookup
// against the plan repository, calls to the external AI agent, and the
// derived views (today's meals, grocery list, insights) built from the
// cached weekly record.
package planner

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/agent"
	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/metrics"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user"
	"github.com/ayushhh101/meal-optimizer-backend/internal/week"
)

// Generator is the boundary to the external AI agent service.
type Generator interface {
	GenerateWeeklyPlan(ctx context.Context, name string, prefs mealplan.Preferences) (*agent.PlanOption, error)
	GenerateInsights(ctx context.Context, profile any, completedMeals []mealplan.Meal) (json.RawMessage, error)
}

// PlanSource tags how a returned plan was obtained.
type PlanSource string

const (
	SourceCache       PlanSource = "cache"
	SourceGenerated   PlanSource = "generated"
	SourceRegenerated PlanSource = "regenerated"
)

// PlanResult is a weekly plan plus its provenance.
type PlanResult struct {
	Plan   *mealplan.WeeklyMealPlan `json:"mealPlan"`
	Source PlanSource               `json:"source"`
}

// Service implements the meal plan operations.
type Service struct {
	plans     *mealplan.Repository
	users     *user.Repository
	generator Generator
	metrics   *metrics.Store

	// now is the reference clock, replaceable in tests.
	now func() time.Time
}

// NewService creates a new planner Service. The metrics store may be nil.
func NewService(plans *mealplan.Repository, users *user.Repository, generator Generator, metricsStore *metrics.Store) *Service {
	return &Service{
		plans:     plans,
		users:     users,
		generator: generator,
		metrics:   metricsStore,
		now:       time.Now,
	}
}

// GetOrGenerate returns the caller's plan for the current week, calling
// the external generator only on a cache miss or when forced. A failed
// generation surfaces immediately; there are no automatic retries, the
// caller decides whether to resubmit.
func (s *Service) GetOrGenerate(ctx context.Context, userID, name string, override *mealplan.Preferences, forceRegenerate bool) (*PlanResult, error) {
	if userID == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, "Authentication required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.New(apperr.KindValidation, "Name is required")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	prefs := mergePreferences(u.Preferences, override)

	now := s.now()
	w := week.Resolve(now)

	existing, err := s.plans.FindActive(ctx, userID, w.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil && !forceRegenerate {
		if err := s.plans.TouchLastAccessed(ctx, existing, now); err != nil {
			return nil, err
		}
		return &PlanResult{Plan: existing, Source: SourceCache}, nil
	}

	option, err := s.generateWithMetrics(ctx, name, prefs)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.Upsert(ctx, userID, w, option.OptionName, option.Days, prefs, now)
	if err != nil {
		return nil, err
	}

	source := SourceGenerated
	if existing != nil {
		source = SourceRegenerated
	}
	return &PlanResult{Plan: plan, Source: source}, nil
}

func (s *Service) generateWithMetrics(ctx context.Context, name string, prefs mealplan.Preferences) (*agent.PlanOption, error) {
	start := s.now()
	option, err := s.generator.GenerateWeeklyPlan(ctx, name, prefs)
	s.recordAgentCall(ctx, "meal-plan-generator", start, err)
	return option, err
}

func (s *Service) recordAgentCall(ctx context.Context, agentName string, start time.Time, callErr error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if callErr != nil {
		outcome = apperr.KindOf(callErr).String()
	}
	if err := s.metrics.Record(ctx, metrics.AgentCall{
		AgentName: agentName,
		Outcome:   outcome,
		Latency:   s.now().Sub(start),
	}); err != nil {
		log.Printf("failed to record %s metric: %v", agentName, err)
	}
}

// CurrentWeek returns the caller's plan for the week containing now.
func (s *Service) CurrentWeek(ctx context.Context, userID string) (*mealplan.WeeklyMealPlan, error) {
	now := s.now()
	plan, err := s.plans.FindActive(ctx, userID, week.Resolve(now).Key)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.New(apperr.KindNotFound, "No meal plan found for this week. Generate one first.")
	}
	if err := s.plans.TouchLastAccessed(ctx, plan, now); err != nil {
		return nil, err
	}
	return plan, nil
}

// Pagination describes one page of a listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// List returns one page of the caller's plans, newest week first.
func (s *Service) List(ctx context.Context, userID string, page, limit int) ([]mealplan.WeeklyMealPlan, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	plans, total, err := s.plans.ListForUser(ctx, userID, page, limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return plans, Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}, nil
}

// Delete soft-deletes one of the caller's plans. Another user's plan is
// indistinguishable from a missing one.
func (s *Service) Delete(ctx context.Context, userID string, planID int64) error {
	plan, err := s.plans.SetActive(ctx, userID, planID, false, s.now())
	if err != nil {
		return err
	}
	if plan == nil {
		return apperr.New(apperr.KindNotFound, "Meal plan not found")
	}
	return nil
}

// ToggleCompletion marks one meal slot of the current week completed or
// not.
func (s *Service) ToggleCompletion(ctx context.Context, userID, dayName, mealType string, isCompleted bool) (*mealplan.Meal, error) {
	if !mealplan.ValidMealType(mealType) {
		return nil, apperr.New(apperr.KindValidation, "mealType must be breakfast, lunch or dinner")
	}
	if dayName == "" {
		return nil, apperr.New(apperr.KindValidation, "day is required")
	}

	now := s.now()
	return s.plans.SetMealCompletion(ctx, userID, week.Resolve(now).Key, dayName, mealplan.MealType(mealType), isCompleted, now)
}

// insightProfile is the user snapshot forwarded to the insight agent.
type insightProfile struct {
	Name        string               `json:"name"`
	Budget      float64              `json:"budget"`
	Location    user.Location        `json:"location"`
	Preferences mealplan.Preferences `json:"preferences"`
}

// MinInsightMeals is the least completed-meal history the insight agent
// needs to say anything useful.
const MinInsightMeals = 3

// Insights gathers the caller's completed meals from weeks ending in the
// last seven days and relays the agent's analysis verbatim.
func (s *Service) Insights(ctx context.Context, userID string) (json.RawMessage, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}

	now := s.now()
	plans, err := s.plans.ListEndedSince(ctx, userID, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	var completed []mealplan.Meal
	for _, plan := range plans {
		for _, day := range plan.Days {
			for _, meal := range []*mealplan.Meal{day.Breakfast, day.Lunch, day.Dinner} {
				if meal != nil && meal.IsCompleted {
					completed = append(completed, *meal)
				}
			}
		}
	}

	if len(completed) < MinInsightMeals {
		return nil, apperr.Newf(apperr.KindInsufficientData,
			"Not enough meal history for insights: complete at least %d meals this week", MinInsightMeals)
	}

	profile := insightProfile{
		Name:        u.Name,
		Budget:      u.Budget,
		Location:    u.Location,
		Preferences: u.Preferences,
	}

	start := s.now()
	insights, err := s.generator.GenerateInsights(ctx, profile, completed)
	s.recordAgentCall(ctx, "insight-generator", start, err)
	if err != nil {
		return nil, err
	}
	return insights, nil
}

// mergePreferences overlays non-nil override fields on the saved
// snapshot.
func mergePreferences(saved mealplan.Preferences, override *mealplan.Preferences) mealplan.Preferences {
	if override == nil {
		return saved
	}
	merged := saved
	if override.Cuisines != nil {
		merged.Cuisines = override.Cuisines
	}
	if override.Goals != nil {
		merged.Goals = override.Goals
	}
	if override.Allergies != nil {
		merged.Allergies = override.Allergies
	}
	if override.DietaryRestrictions != nil {
		merged.DietaryRestrictions = override.DietaryRestrictions
	}
	return merged
}
