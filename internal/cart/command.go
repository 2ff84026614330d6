package cart

import "github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"

// Command is the closed set of cart transitions.
type Command interface {
	isCommand()
}

type Add struct {
	Product catalog.Product
}

// AddMany with a quantity below 1 leaves the lines untouched.
type AddMany struct {
	Product  catalog.Product
	Quantity int
}

type Remove struct {
	ProductID int
}

// SetQuantity removes the line when Quantity <= 0.
type SetQuantity struct {
	ProductID int
	Quantity  int
}

type Clear struct{}

type TogglePanel struct{}

// Hydrate replaces the lines with ones read from storage.
type Hydrate struct {
	Lines []Line
}

func (Add) isCommand()         {}
func (AddMany) isCommand()     {}
func (Remove) isCommand()      {}
func (SetQuantity) isCommand() {}
func (Clear) isCommand()       {}
func (TogglePanel) isCommand() {}
func (Hydrate) isCommand()     {}

// persists reports whether the resulting lines must be written to storage.
func persists(cmd Command) bool {
	switch cmd.(type) {
	case TogglePanel, Hydrate:
		return false
	default:
		return true
	}
}
