package browse

import (
	"fmt"
	"strings"
)

const (
	MenCategory   = "men's clothing"
	WomenCategory = "women's clothing"
)

var displayNames = map[string]string{
	"electronics": "Electronics",
	"jewelery":    "Jewelry",
	MenCategory:   "Men's Clothing",
	WomenCategory: "Women's Clothing",
}

func IsClothing(category string) bool {
	return category == MenCategory || category == WomenCategory
}

// MenuCategories drops the clothing categories, which are reached through the clothes view.
func MenuCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if !IsClothing(c) {
			out = append(out, c)
		}
	}
	return out
}

func DisplayName(category string) string {
	if name, ok := displayNames[category]; ok {
		return name
	}
	return category
}

func Title(q Query) string {
	switch q.View {
	case ViewClothes:
		return "Clothes"
	case ViewSearch:
		if strings.TrimSpace(q.Search) != "" {
			return fmt.Sprintf("Search Results for %q", q.Search)
		}
		return "Search Products"
	case ViewCategory:
		if q.Category != "" {
			return DisplayName(q.Category)
		}
	}
	return "Featured Products"
}
