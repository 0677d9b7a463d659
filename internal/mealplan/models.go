// Package mealplan owns the weekly meal plan record: its domain model
// and the database-backed repository keyed by (user, year, month,
// week of month).
package mealplan

import (
	"time"

	"github.com/ayushhh101/meal-optimizer-backend/internal/week"
)

// MealType identifies one of the three meal slots of a day.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// ValidMealType reports whether s names a meal slot.
func ValidMealType(s string) bool {
	switch MealType(s) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// Meal is a single recipe filling one meal slot.
type Meal struct {
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	YoutubeLink string   `json:"youtube_link,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	CookTime    string   `json:"cookTime,omitempty"`
	IsCompleted bool     `json:"isCompleted"`
}

// DayMeals holds up to three meal slots for one weekday. A nil slot is a
// valid state, filled with placeholder defaults at view-building time.
type DayMeals struct {
	Day       string `json:"day"`
	Breakfast *Meal  `json:"breakfast,omitempty"`
	Lunch     *Meal  `json:"lunch,omitempty"`
	Dinner    *Meal  `json:"dinner,omitempty"`
}

// Slot returns the meal in the given slot, or nil if absent.
func (d *DayMeals) Slot(mealType MealType) *Meal {
	switch mealType {
	case MealTypeBreakfast:
		return d.Breakfast
	case MealTypeLunch:
		return d.Lunch
	case MealTypeDinner:
		return d.Dinner
	}
	return nil
}

// Preferences is the dietary snapshot a plan was generated with.
type Preferences struct {
	Cuisines            []string `json:"cuisines"`
	Goals               []string `json:"goals"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// WeeklyMealPlan is one cached weekly plan for one user.
type WeeklyMealPlan struct {
	ID           int64       `json:"id"`
	UserID       string      `json:"userId"`
	Year         int         `json:"year"`
	Month        int         `json:"month"`
	WeekOfMonth  int         `json:"weekOfMonth"`
	WeekNumber   int         `json:"weekNumber"`
	StartDate    time.Time   `json:"startDate"`
	EndDate      time.Time   `json:"endDate"`
	OptionName   string      `json:"optionName"`
	Days         []DayMeals  `json:"days"`
	Preferences  Preferences `json:"preferences"`
	IsActive     bool        `json:"isActive"`
	LastAccessed time.Time   `json:"lastAccessed"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// DayByName returns the day entry matching the weekday name, or nil.
func (p *WeeklyMealPlan) DayByName(name string) *DayMeals {
	for i := range p.Days {
		if p.Days[i].Day == name {
			return &p.Days[i]
		}
	}
	return nil
}

// Key returns the plan's week bucket key.
func (p *WeeklyMealPlan) Key() week.Key {
	return week.Key{Year: p.Year, Month: p.Month, WeekOfMonth: p.WeekOfMonth}
}
