package planner

import (
	"context"

	"github.com/ayushhh101/meal-optimizer-backend/internal/apperr"
	"github.com/ayushhh101/meal-optimizer-backend/internal/grocery"
	"github.com/ayushhh101/meal-optimizer-backend/internal/mealplan"
	"github.com/ayushhh101/meal-optimizer-backend/internal/week"
)

const (
	// fallbackImageURL fills the image of a placeholder meal slot.
	fallbackImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400"
	defaultCookTime  = "15 mins"
)

// MealView is one normalized meal slot in the today's-meals response.
// Alternate image fields fold into the single Image field; an absent
// slot becomes a zero-nutrition placeholder rather than a gap.
type MealView struct {
	MealType    string   `json:"mealType"`
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	CookTime    string   `json:"cookTime"`
	YoutubeLink string   `json:"youtube_link,omitempty"`
	IsCompleted bool     `json:"isCompleted"`
}

// NutritionStats sums nutrition across the three meal slots of a day.
type NutritionStats struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// TodayMealsView is the today's-meals response.
type TodayMealsView struct {
	Day            string         `json:"day"`
	Date           string         `json:"date"`
	OptionName     string         `json:"optionName"`
	Meals          []MealView     `json:"meals"`
	NutritionStats NutritionStats `json:"nutritionStats"`
}

// TodayMeals builds the normalized view of today's three meal slots from
// the cached weekly record.
func (s *Service) TodayMeals(ctx context.Context, userID string) (*TodayMealsView, error) {
	plan, day, err := s.todayLookup(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	view := &TodayMealsView{
		Day:        day.Day,
		Date:       now.Format("2006-01-02"),
		OptionName: plan.OptionName,
	}

	for _, mealType := range []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeDinner} {
		mv := buildMealView(mealType, day.Slot(mealType))
		view.Meals = append(view.Meals, mv)
		view.NutritionStats.Calories += mv.Calories
		view.NutritionStats.Protein += mv.Protein
		view.NutritionStats.Carbs += mv.Carbs
		view.NutritionStats.Fat += mv.Fat
	}
	return view, nil
}

// GroceryListView is the today's-grocery-list response.
type GroceryListView struct {
	Day         string       `json:"day"`
	Date        string       `json:"date"`
	Meals       []string     `json:"meals"`
	GroceryList grocery.List `json:"groceryList"`
}

// TodayGroceryList aggregates today's ingredients into a categorized,
// deduplicated grocery list.
func (s *Service) TodayGroceryList(ctx context.Context, userID string) (*GroceryListView, error) {
	_, day, err := s.todayLookup(ctx, userID)
	if err != nil {
		return nil, err
	}

	var ingredients []string
	var mealNames []string
	for _, mealType := range []mealplan.MealType{mealplan.MealTypeBreakfast, mealplan.MealTypeLunch, mealplan.MealTypeDinner} {
		meal := day.Slot(mealType)
		if meal == nil {
			continue
		}
		mealNames = append(mealNames, meal.Name)
		ingredients = append(ingredients, meal.Ingredients...)
	}

	return &GroceryListView{
		Day:         day.Day,
		Date:        s.now().Format("2006-01-02"),
		Meals:       mealNames,
		GroceryList: grocery.BuildList(ingredients),
	}, nil
}

// todayLookup fetches the active plan for the current week and the day
// entry matching today's weekday name.
func (s *Service) todayLookup(ctx context.Context, userID string) (*mealplan.WeeklyMealPlan, *mealplan.DayMeals, error) {
	if userID == "" {
		return nil, nil, apperr.New(apperr.KindUnauthenticated, "Authentication required")
	}

	now := s.now()
	plan, err := s.plans.FindActive(ctx, userID, week.Resolve(now).Key)
	if err != nil {
		return nil, nil, err
	}
	if plan == nil {
		return nil, nil, apperr.New(apperr.KindNotFound, "No meal plan found for this week. Generate one first.")
	}
	if err := s.plans.TouchLastAccessed(ctx, plan, now); err != nil {
		return nil, nil, err
	}

	dayName := now.Weekday().String()
	day := plan.DayByName(dayName)
	if day == nil {
		return nil, nil, apperr.Newf(apperr.KindNotFound, "No meals planned for %s", dayName)
	}
	return plan, day, nil
}

func buildMealView(mealType mealplan.MealType, meal *mealplan.Meal) MealView {
	if meal == nil {
		return MealView{
			MealType:    string(mealType),
			Name:        "No meal planned",
			Ingredients: []string{},
			Image:       fallbackImageURL,
			CookTime:    defaultCookTime,
		}
	}

	image := meal.ImageURL
	if image == "" {
		image = fallbackImageURL
	}
	cookTime := meal.CookTime
	if cookTime == "" {
		cookTime = defaultCookTime
	}
	ingredients := meal.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return MealView{
		MealType:    string(mealType),
		Name:        meal.Name,
		Calories:    meal.Calories,
		Protein:     meal.Protein,
		Carbs:       meal.Carbs,
		Fat:         meal.Fat,
		Ingredients: ingredients,
		Image:       image,
		CookTime:    cookTime,
		YoutubeLink: meal.YoutubeLink,
		IsCompleted: meal.IsCompleted,
	}
}
