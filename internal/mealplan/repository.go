package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan/plandb"
	"github.com/ayushhh101/meal-optimizer-backend/internal/week"
)

// Repository is a database-backed store for weekly meal plans.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// FindActive retrieves the active plan for a week key, or nil if absent.
// Soft-deleted records are never returned.
func (r *Repository) FindActive(ctx context.Context, userID string, key week.Key) (*WeeklyMealPlan, error) {
	row, err := r.queries.GetActiveWeeklyPlan(ctx, plandb.GetActiveWeeklyPlanParams{
		UserID:      userID,
		Year:        int64(key.Year),
		Month:       int64(key.Month),
		WeekOfMonth: int64(key.WeekOfMonth),
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weekly plan: %w", err)
	}
	return toDomain(row)
}

// Upsert atomically creates the plan for the week key or overwrites the
// mutable fields of the existing record. Regeneration reuses the same
// row rather than deleting and recreating it, so the unique composite
// key can never collide and soft-deleted rows are revived in place. The
// conflict resolution runs inside a single statement, which is what
// keeps two concurrent generate calls from producing duplicate records.
func (r *Repository) Upsert(ctx context.Context, userID string, w week.Week, optionName string, days []DayMeals, prefs Preferences, now time.Time) (*WeeklyMealPlan, error) {
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan days: %w", err)
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan preferences: %w", err)
	}

	row, err := r.queries.UpsertWeeklyPlan(ctx, plandb.UpsertWeeklyPlanParams{
		UserID:       userID,
		Year:         int64(w.Year),
		Month:        int64(w.Month),
		WeekOfMonth:  int64(w.WeekOfMonth),
		WeekNumber:   int64(w.WeekNumber),
		StartDate:    w.StartDate,
		EndDate:      w.EndDate,
		OptionName:   optionName,
		Days:         string(daysJSON),
		Preferences:  string(prefsJSON),
		LastAccessed: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert weekly plan: %w", err)
	}
	return toDomain(row)
}

// TouchLastAccessed records a successful read of the plan.
func (r *Repository) TouchLastAccessed(ctx context.Context, plan *WeeklyMealPlan, now time.Time) error {
	if err := r.queries.TouchWeeklyPlanLastAccessed(ctx, plandb.TouchWeeklyPlanLastAccessedParams{
		LastAccessed: now,
		ID:           plan.ID,
	}); err != nil {
		return fmt.Errorf("failed to touch last accessed: %w", err)
	}
	plan.LastAccessed = now
	return nil
}

// SetActive soft-deletes or restores a plan. The owning user is part of
// the match criteria, so another user's record simply does not match and
// comes back as nil.
func (r *Repository) SetActive(ctx context.Context, userID string, planID int64, active bool, now time.Time) (*WeeklyMealPlan, error) {
	row, err := r.queries.SetWeeklyPlanActive(ctx, plandb.SetWeeklyPlanActiveParams{
		IsActive:  active,
		UpdatedAt: now,
		ID:        planID,
		UserID:    userID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set plan active state: %w", err)
	}
	return toDomain(row)
}

// SetMealCompletion flips the isCompleted flag on one meal slot of one
// day of the user's plan for the given week. It fails with a NotFound
// error when the week record, the day, or the slot is absent.
func (r *Repository) SetMealCompletion(ctx context.Context, userID string, key week.Key, dayName string, mealType MealType, isCompleted bool, now time.Time) (*Meal, error) {
	plan, err := r.FindActive(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperr.New(apperr.KindNotFound, "No meal plan found for this week")
	}

	day := plan.DayByName(dayName)
	if day == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "No meals found for %s", dayName)
	}

	meal := day.Slot(mealType)
	if meal == nil {
		return nil, apperr.Newf(apperr.KindNotFound, "No %s found for %s", mealType, dayName)
	}
	meal.IsCompleted = isCompleted

	daysJSON, err := json.Marshal(plan.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan days: %w", err)
	}
	if err := r.queries.UpdateWeeklyPlanDays(ctx, plandb.UpdateWeeklyPlanDaysParams{
		Days:      string(daysJSON),
		UpdatedAt: now,
		ID:        plan.ID,
		UserID:    userID,
	}); err != nil {
		return nil, fmt.Errorf("failed to persist meal completion: %w", err)
	}

	return meal, nil
}

// ListForUser returns one page of the user's active plans, newest week
// first, along with the total active count.
func (r *Repository) ListForUser(ctx context.Context, userID string, page, limit int) ([]WeeklyMealPlan, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	rows, err := r.queries.ListWeeklyPlansByUser(ctx, plandb.ListWeeklyPlansByUserParams{
		UserID: userID,
		Limit:  int64(limit),
		Offset: int64((page - 1) * limit),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list weekly plans: %w", err)
	}

	total, err := r.queries.CountWeeklyPlansByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count weekly plans: %w", err)
	}

	plans := make([]WeeklyMealPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := toDomain(row)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, *plan)
	}
	return plans, total, nil
}

// ListEndedSince returns the user's active plans whose week ended on or
// after the given instant. Used for insight aggregation over recent
// history.
func (r *Repository) ListEndedSince(ctx context.Context, userID string, since time.Time) ([]WeeklyMealPlan, error) {
	rows, err := r.queries.ListWeeklyPlansEndedSince(ctx, plandb.ListWeeklyPlansEndedSinceParams{
		UserID:  userID,
		EndDate: since,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent weekly plans: %w", err)
	}

	plans := make([]WeeklyMealPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *plan)
	}
	return plans, nil
}

func toDomain(row plandb.WeeklyMealPlan) (*WeeklyMealPlan, error) {
	var days []DayMeals
	if err := json.Unmarshal([]byte(row.Days), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan days for plan %d: %w", row.ID, err)
	}
	var prefs Preferences
	if err := json.Unmarshal([]byte(row.Preferences), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan preferences for plan %d: %w", row.ID, err)
	}

	return &WeeklyMealPlan{
		ID:           row.ID,
		UserID:       row.UserID,
		Year:         int(row.Year),
		Month:        int(row.Month),
		WeekOfMonth:  int(row.WeekOfMonth),
		WeekNumber:   int(row.WeekNumber),
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		OptionName:   row.OptionName,
		Days:         days,
		Preferences:  prefs,
		IsActive:     row.IsActive,
		LastAccessed: row.LastAccessed,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
