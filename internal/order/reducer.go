package order

// Command is the closed set of order history transitions.
type Command interface {
	isCommand()
}

// Add prepends an already stamped order.
type Add struct {
	Order Order
}

type UpdateStatus struct {
	OrderID string
	Status  Status
}

type TogglePanel struct{}

type Hydrate struct {
	Orders []Order
}

func (Add) isCommand()          {}
func (UpdateStatus) isCommand() {}
func (TogglePanel) isCommand()  {}
func (Hydrate) isCommand()      {}

func persists(cmd Command) bool {
	switch cmd.(type) {
	case Add, UpdateStatus:
		return true
	default:
		return false
	}
}

// State is the order history, newest first. Open is never persisted.
type State struct {
	Orders []Order `json:"orders"`
	Open   bool    `json:"open"`
}

func (s State) Find(id string) (Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o.clone(), true
		}
	}
	return Order{}, false
}

func (s State) clone() State {
	orders := make([]Order, len(s.Orders))
	copy(orders, s.Orders)
	return State{Orders: orders, Open: s.Open}
}

// Reduce applies cmd to s and returns the new state. s is not modified.
func Reduce(s State, cmd Command) State {
	next := s.clone()

	switch c := cmd.(type) {
	case Add:
		next.Orders = append([]Order{c.Order.clone()}, next.Orders...)
	case UpdateStatus:
		for i := range next.Orders {
			if next.Orders[i].ID == c.OrderID {
				next.Orders[i].Status = c.Status
				break
			}
		}
	case TogglePanel:
		next.Open = !next.Open
	case Hydrate:
		next.Orders = append([]Order{}, c.Orders...)
	}

	return next
}
