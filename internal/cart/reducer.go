package cart

import "github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"

// Reduce applies cmd to s and returns the new state. s is not modified.
func Reduce(s State, cmd Command) State {
	next := s.clone()

	switch c := cmd.(type) {
	case Add:
		next.Lines = merge(next.Lines, c.Product, 1)
	case AddMany:
		if c.Quantity >= 1 {
			next.Lines = merge(next.Lines, c.Product, c.Quantity)
		}
	case Remove:
		if i := next.indexOf(c.ProductID); i >= 0 {
			next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
		}
	case SetQuantity:
		if i := next.indexOf(c.ProductID); i >= 0 {
			if c.Quantity <= 0 {
				next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
			} else {
				next.Lines[i].Quantity = c.Quantity
			}
		}
	case Clear:
		next.Lines = []Line{}
	case TogglePanel:
		next.Open = !next.Open
	case Hydrate:
		next.Lines = normalize(c.Lines)
	}

	return next
}

func merge(lines []Line, p catalog.Product, qty int) []Line {
	for i := range lines {
		if lines[i].ID == p.ID {
			lines[i].Quantity += qty
			return lines
		}
	}
	return append(lines, Line{Product: p, Quantity: qty})
}

// normalize drops non-positive quantities and folds duplicate ids into the first occurrence.
func normalize(in []Line) []Line {
	out := []Line{}
	for _, l := range in {
		if l.Quantity <= 0 {
			continue
		}
		out = merge(out, l.Product, l.Quantity)
	}
	return out
}
