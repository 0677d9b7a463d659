// Package grocery classifies free-text ingredients into shopping
// categories and aggregates them into a grocery list.
package grocery

import "strings"

// Category is a shopping category label.
type Category string

const (
	CategoryProtein    Category = "Protein"
	CategoryGrains     Category = "Grains"
	CategoryProduce    Category = "Fruits & Vegetables"
	CategoryDairy      Category = "Dairy"
	CategoryOils       Category = "Oils"
	CategorySpices     Category = "Spices"
	CategorySweeteners Category = "Sweeteners"
	CategoryNutsSeeds  Category = "Nuts & Seeds"
	CategoryOthers     Category = "Others"
)

// CategoryOrder is the display order of categories in a grocery list.
var CategoryOrder = []Category{
	CategoryProtein,
	CategoryGrains,
	CategoryProduce,
	CategoryDairy,
	CategoryOils,
	CategorySpices,
	CategorySweeteners,
	CategoryNutsSeeds,
	CategoryOthers,
}

// categoryPatterns are tested in order; the first category with a
// matching pattern wins. Ordering is significant: "paneer" lands in
// Protein even though it is a dairy product, because Protein is tested
// before Dairy.
var categoryPatterns = []struct {
	category Category
	patterns []string
}{
	{CategoryProtein, []string{
		"chicken", "mutton", "lamb", "beef", "pork", "turkey",
		"fish", "salmon", "tuna", "prawn", "shrimp",
		"egg", "paneer", "tofu", "soya", "soy chunks",
		"dal", "lentil", "chickpea", "chana", "rajma", "kidney beans",
	}},
	{CategoryGrains, []string{
		"rice", "wheat", "flour", "atta", "maida", "bread", "roti",
		"oats", "quinoa", "pasta", "noodle", "poha", "semolina", "rava",
		"barley", "millet", "couscous", "tortilla", "vermicelli",
	}},
	{CategoryProduce, []string{
		"onion", "tomato", "potato", "carrot", "spinach", "palak",
		"capsicum", "bell pepper", "broccoli", "cauliflower", "cabbage",
		"peas", "beans", "cucumber", "zucchini", "mushroom", "corn",
		"ginger", "garlic", "lemon", "lime", "apple", "banana", "mango",
		"orange", "berries", "strawberry", "blueberry", "avocado",
		"pumpkin", "beetroot", "radish", "lettuce", "kale", "celery",
		"coriander leaves", "mint", "curry leaves", "cilantro",
	}},
	{CategoryDairy, []string{
		"milk", "curd", "yogurt", "yoghurt", "cheese", "butter",
		"cream", "ghee", "buttermilk", "khoya",
	}},
	{CategoryOils, []string{
		"oil", "olive oil", "mustard oil", "coconut oil", "sesame oil",
	}},
	{CategorySpices, []string{
		"salt", "black pepper", "pepper powder", "chilli", "chili",
		"turmeric", "cumin", "coriander powder", "coriander seeds",
		"masala", "cinnamon", "cardamom", "clove", "bay leaf",
		"paprika", "oregano", "basil", "thyme", "rosemary",
		"mustard seeds", "fenugreek", "asafoetida", "hing", "saffron",
		"vinegar", "soy sauce", "spice",
	}},
	{CategorySweeteners, []string{
		"sugar", "honey", "jaggery", "maple syrup", "stevia", "dates syrup",
	}},
	{CategoryNutsSeeds, []string{
		"almond", "cashew", "walnut", "peanut", "pistachio", "raisin",
		"sesame", "chia", "flax", "sunflower seeds", "pumpkin seeds",
		"nuts", "seeds",
	}},
}

// Categorize maps an ingredient string to exactly one category. Matching
// is a case-insensitive substring test; unmatched text falls into Others.
func Categorize(ingredient string) Category {
	lower := strings.ToLower(ingredient)
	for _, set := range categoryPatterns {
		for _, pattern := range set.patterns {
			if strings.Contains(lower, pattern) {
				return set.category
			}
		}
	}
	return CategoryOthers
}
