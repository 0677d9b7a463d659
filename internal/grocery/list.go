package grocery

import (
	"sort"
	"strings"
)

// CategoryItems is one category's slice of a grocery list.
type CategoryItems struct {
	Category Category `json:"category"`
	Items    []string `json:"items"`
}

// List is a categorized grocery list derived from a day's meals.
type List struct {
	TotalItems int             `json:"totalItems"`
	Categories []CategoryItems `json:"categories"`
}

// BuildList classifies every ingredient, de-duplicates case-insensitively
// within each category (first occurrence keeps its casing) and sorts the
// surviving items. Blank entries are dropped. Categories with no items
// are omitted from the result.
func BuildList(ingredients []string) List {
	byCategory := make(map[Category][]string)
	seen := make(map[Category]map[string]bool)

	for _, raw := range ingredients {
		item := strings.TrimSpace(raw)
		if item == "" {
			continue
		}

		cat := Categorize(item)
		key := strings.ToLower(item)
		if seen[cat] == nil {
			seen[cat] = make(map[string]bool)
		}
		if seen[cat][key] {
			continue
		}
		seen[cat][key] = true
		byCategory[cat] = append(byCategory[cat], item)
	}

	list := List{}
	for _, cat := range CategoryOrder {
		items := byCategory[cat]
		if len(items) == 0 {
			continue
		}
		sort.Strings(items)
		list.Categories = append(list.Categories, CategoryItems{Category: cat, Items: items})
		list.TotalItems += len(items)
	}
	return list
}
