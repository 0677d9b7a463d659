// Package user owns user accounts: profile, saved dietary preferences,
// and the repository backing them.
package user

import (
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
)

// Location is where the user shops, used to ground budget defaults.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// User is a registered account. PasswordHash never serializes.
type User struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	PasswordHash string               `json:"-"`
	Budget       float64              `json:"budget"`
	Location     Location             `json:"location"`
	Preferences  mealplan.Preferences `json:"preferences"`
	IsActive     bool                 `json:"isActive"`
	LastLogin    time.Time            `json:"lastLogin"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
