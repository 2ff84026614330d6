package cart

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

// Line is a product snapshot plus how many of it are in the cart. It serialises flat:
// the product fields followed by "quantity".
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (l Line) UnitPrice() decimal.Decimal { return l.Price }
func (l Line) Units() int                 { return l.Quantity }

func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// State is the whole cart. Open is panel visibility and is never persisted.
type State struct {
	Lines []Line `json:"lines"`
	Open  bool   `json:"open"`
}

func (s State) Count() int {
	n := 0
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

func (s State) QuantityOf(productID int) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.Lines[i].Quantity
	}
	return 0
}

func (s State) indexOf(productID int) int {
	for i, l := range s.Lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}

func (s State) clone() State {
	lines := make([]Line, len(s.Lines))
	copy(lines, s.Lines)
	return State{Lines: lines, Open: s.Open}
}
