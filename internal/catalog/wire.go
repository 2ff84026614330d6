package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// productWire mirrors the remote payload. Pointers tell a missing field apart from a zero one.
type productWire struct {
	ID          *int             `json:"id"`
	Title       *string          `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	Category    *string          `json:"category"`
	Image       string           `json:"image"`
	Rating      *ratingWire      `json:"rating"`
}

type ratingWire struct {
	Rate  *float64 `json:"rate"`
	Count *int     `json:"count"`
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

func (w productWire) toProduct() (Product, error) {
	switch {
	case w.ID == nil || *w.ID <= 0:
		return Product{}, malformed("product id missing or not positive")
	case w.Title == nil || strings.TrimSpace(*w.Title) == "":
		return Product{}, malformed("product %d: title missing", *w.ID)
	case w.Price == nil || w.Price.IsNegative():
		return Product{}, malformed("product %d: price missing or negative", *w.ID)
	case w.Category == nil || strings.TrimSpace(*w.Category) == "":
		return Product{}, malformed("product %d: category missing", *w.ID)
	}

	p := Product{
		ID:          *w.ID,
		Title:       *w.Title,
		Price:       *w.Price,
		Description: w.Description,
		Category:    *w.Category,
		Image:       w.Image,
	}

	if w.Rating != nil {
		if w.Rating.Rate != nil {
			if *w.Rating.Rate < 0 || *w.Rating.Rate > 5 {
				return Product{}, malformed("product %d: rating %.2f out of range", p.ID, *w.Rating.Rate)
			}
			p.Rating.Rate = *w.Rating.Rate
		}
		if w.Rating.Count != nil {
			if *w.Rating.Count < 0 {
				return Product{}, malformed("product %d: negative rating count", p.ID)
			}
			p.Rating.Count = *w.Rating.Count
		}
	}

	return p, nil
}

func decodeProduct(body []byte) (Product, error) {
	var w productWire
	if err := json.Unmarshal(body, &w); err != nil {
		return Product{}, malformed("decode product: %v", err)
	}
	return w.toProduct()
}

func decodeProducts(body []byte) ([]Product, error) {
	var ws []productWire
	if err := json.Unmarshal(body, &ws); err != nil {
		return nil, malformed("decode products: %v", err)
	}

	out := make([]Product, 0, len(ws))
	for _, w := range ws {
		p, err := w.toProduct()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeCategories(body []byte) ([]string, error) {
	var cats []string
	if err := json.Unmarshal(body, &cats); err != nil {
		return nil, malformed("decode categories: %v", err)
	}
	for i, c := range cats {
		if strings.TrimSpace(c) == "" {
			return nil, malformed("category %d is empty", i)
		}
	}
	return cats, nil
}
