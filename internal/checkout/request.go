package checkout

import (
	"errors"
	"strings"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

var (
	ErrEmptyCart      = errors.New("checkout: cart is empty")
	ErrInvalidRequest = errors.New("checkout: invalid request")
)

// ValidationError names every field that was missing or wrong.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "checkout: missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Card details are checked for presence only and never stored.
type Card struct {
	Number string `json:"cardNumber"`
	Name   string `json:"cardName"`
	Expiry string `json:"expiryDate"`
	CVV    string `json:"cvv"`
}

type Request struct {
	ShippingInfo  order.ShippingInfo  `json:"shippingInfo"`
	PaymentMethod order.PaymentMethod `json:"paymentMethod"`
	Card          *Card               `json:"card,omitempty"`
}

func (r Request) Validate() error {
	var fields []string
	for _, f := range r.ShippingInfo.Missing() {
		fields = append(fields, "shippingInfo."+f)
	}

	method, err := order.ParsePaymentMethod(string(r.PaymentMethod))
	if err != nil {
		fields = append(fields, "paymentMethod")
	}

	if method == order.PaymentCard {
		c := r.Card
		if c == nil {
			c = &Card{}
		}
		for _, f := range []struct{ name, value string }{
			{"card.cardNumber", c.Number},
			{"card.cardName", c.Name},
			{"card.expiryDate", c.Expiry},
			{"card.cvv", c.CVV},
		} {
			if strings.TrimSpace(f.value) == "" {
				fields = append(fields, f.name)
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
