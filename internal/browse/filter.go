package browse

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type View string

const (
	ViewHome     View = "home"
	ViewCategory View = "category"
	ViewClothes  View = "clothes"
	ViewSearch   View = "search"
)

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return ViewHome, nil
	case ViewHome, ViewCategory, ViewClothes, ViewSearch:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// ClothesFilter narrows the clothes view only.
type ClothesFilter string

const (
	ClothesAll   ClothesFilter = "all"
	ClothesMen   ClothesFilter = "men"
	ClothesWomen ClothesFilter = "women"
)

func ParseClothesFilter(s string) (ClothesFilter, error) {
	switch f := ClothesFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return ClothesAll, nil
	case ClothesAll, ClothesMen, ClothesWomen:
		return f, nil
	default:
		return "", fmt.Errorf("unknown clothes filter %q", s)
	}
}

// Query holds the four inputs the visible product set is derived from.
type Query struct {
	View     View          `json:"view"`
	Category string        `json:"category,omitempty"`
	Clothes  ClothesFilter `json:"clothes"`
	Search   string        `json:"search,omitempty"`
}

// Filter returns the products visible for q. It always starts from the full catalog and
// never returns the input slice itself.
func Filter(products []catalog.Product, q Query) []catalog.Product {
	switch q.View {
	case ViewClothes:
		return keep(products, clothesMatcher(q.Clothes))
	case ViewCategory:
		if q.Category == "" {
			return keep(products, nil)
		}
		return keep(products, func(p catalog.Product) bool { return p.Category == q.Category })
	case ViewSearch:
		needle := strings.TrimSpace(q.Search)
		if needle == "" {
			return keep(products, nil)
		}
		return keep(products, searchMatcher(needle))
	default:
		return keep(products, nil)
	}
}

func clothesMatcher(f ClothesFilter) func(catalog.Product) bool {
	switch f {
	case ClothesMen:
		return func(p catalog.Product) bool { return p.Category == MenCategory }
	case ClothesWomen:
		return func(p catalog.Product) bool { return p.Category == WomenCategory }
	default:
		return func(p catalog.Product) bool { return IsClothing(p.Category) }
	}
}

func searchMatcher(needle string) func(catalog.Product) bool {
	fold := cases.Fold()
	n := fold.String(needle)
	return func(p catalog.Product) bool {
		return strings.Contains(fold.String(p.Title), n) ||
			strings.Contains(fold.String(p.Description), n)
	}
}

func keep(products []catalog.Product, match func(catalog.Product) bool) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if match == nil || match(p) {
			out = append(out, p)
		}
	}
	return out
}
