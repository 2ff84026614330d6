package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentPayPal PaymentMethod = "paypal"
	PaymentApple  PaymentMethod = "apple"
)

func ParsePaymentMethod(v string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(v))); m {
	case PaymentCard, PaymentPayPal, PaymentApple:
		return m, nil
	default:
		return "", fmt.Errorf("unknown payment method %q", v)
	}
}

const DefaultCountry = "United States"

type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

func (s ShippingInfo) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Missing lists the json names of required fields left blank. Country is optional.
func (s ShippingInfo) Missing() []string {
	var out []string
	for _, f := range []struct {
		name, value string
	}{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"state", s.State},
		{"zipCode", s.ZipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// Order is immutable once placed except for Status.
type Order struct {
	ID                string          `json:"id"`
	Items             []cart.Line     `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Shipping          decimal.Decimal `json:"shipping"`
	Tax               decimal.Decimal `json:"tax"`
	Total             decimal.Decimal `json:"total"`
	OrderDate         time.Time       `json:"orderDate"`
	Status            Status          `json:"status"`
	ShippingInfo      ShippingInfo    `json:"shippingInfo"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	EstimatedDelivery string          `json:"estimatedDelivery,omitempty"`
}

// ShowsDelivery reports whether the delivery estimate is still worth showing.
func (o Order) ShowsDelivery() bool {
	return o.EstimatedDelivery != "" &&
		o.Status != StatusDelivered && o.Status != StatusCancelled
}

func (o Order) clone() Order {
	o.Items = append([]cart.Line(nil), o.Items...)
	return o
}
