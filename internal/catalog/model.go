package catalog

import "github.com/shopspring/decimal"

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is immutable once fetched; carts and orders hold copies of it.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Snapshot is the full catalog as loaded on startup.
type Snapshot struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}
