package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/user/userdb"
)

// Repository is a database-backed store for user accounts.
type Repository struct {
	queries *userdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: userdb.New(d),
		db:      d,
	}
}

// Create inserts a new user with a fresh id. Email is stored lowercased.
func (r *Repository) Create(ctx context.Context, name, email, passwordHash string, now time.Time) (*User, error) {
	locationJSON, _ := json.Marshal(Location{City: "Unknown", State: "Unknown", Country: "India"})
	prefsJSON, _ := json.Marshal(mealplan.Preferences{})

	row, err := r.queries.CreateUser(ctx, userdb.CreateUserParams{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Budget:       75,
		Location:     string(locationJSON),
		Preferences:  string(prefsJSON),
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toDomain(row)
}

// GetByID retrieves a user by id, or nil if absent.
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	row, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return toDomain(row)
}

// GetByEmail retrieves a user by email (case-insensitive), or nil.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row, err := r.queries.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return toDomain(row)
}

// UpdateProfile overwrites name, budget and location.
func (r *Repository) UpdateProfile(ctx context.Context, id, name string, budget float64, location Location, now time.Time) (*User, error) {
	locationJSON, err := json.Marshal(location)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location: %w", err)
	}

	row, err := r.queries.UpdateUserProfile(ctx, userdb.UpdateUserProfileParams{
		Name:      strings.TrimSpace(name),
		Budget:    budget,
		Location:  string(locationJSON),
		UpdatedAt: now,
		ID:        id,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return toDomain(row)
}

// UpdatePreferences replaces the saved dietary preference snapshot.
func (r *Repository) UpdatePreferences(ctx context.Context, id string, prefs mealplan.Preferences, now time.Time) (*User, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}

	row, err := r.queries.UpdateUserPreferences(ctx, userdb.UpdateUserPreferencesParams{
		Preferences: string(prefsJSON),
		UpdatedAt:   now,
		ID:          id,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user preferences: %w", err)
	}
	return toDomain(row)
}

// UpdateBudget replaces the user's budget.
func (r *Repository) UpdateBudget(ctx context.Context, id string, budget float64, now time.Time) (*User, error) {
	row, err := r.queries.UpdateUserBudget(ctx, userdb.UpdateUserBudgetParams{
		Budget:    budget,
		UpdatedAt: now,
		ID:        id,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user budget: %w", err)
	}
	return toDomain(row)
}

// TouchLastLogin records a successful login.
func (r *Repository) TouchLastLogin(ctx context.Context, id string, now time.Time) error {
	if err := r.queries.UpdateUserLastLogin(ctx, userdb.UpdateUserLastLoginParams{
		LastLogin: now,
		ID:        id,
	}); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// Deactivate soft-deletes the account; the row is retained.
func (r *Repository) Deactivate(ctx context.Context, id string, now time.Time) error {
	if err := r.queries.SetUserActive(ctx, userdb.SetUserActiveParams{
		IsActive:  false,
		UpdatedAt: now,
		ID:        id,
	}); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

func toDomain(row userdb.User) (*User, error) {
	var location Location
	if err := json.Unmarshal([]byte(row.Location), &location); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location for user %s: %w", row.ID, err)
	}
	var prefs mealplan.Preferences
	if err := json.Unmarshal([]byte(row.Preferences), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences for user %s: %w", row.ID, err)
	}

	return &User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Budget:       row.Budget,
		Location:     location,
		Preferences:  prefs,
		IsActive:     row.IsActive,
		LastLogin:    row.LastLogin,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
