package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

const (
	OrderPlacedEvent        = "OrderPlaced"
	OrderStatusChangedEvent = "OrderStatusChanged"
)

type OrderLine struct {
	ProductID int             `json:"productId"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderPlacedPayload struct {
	OrderID       string              `json:"orderId"`
	Lines         []OrderLine         `json:"lines"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Shipping      decimal.Decimal     `json:"shipping"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod order.PaymentMethod `json:"paymentMethod"`
	Email         string              `json:"email"`
	OrderDate     time.Time           `json:"orderDate"`
}

type OrderStatusChangedPayload struct {
	OrderID string       `json:"orderId"`
	Status  order.Status `json:"status"`
}

func orderPlacedPayload(o order.Order) OrderPlacedPayload {
	p := OrderPlacedPayload{
		OrderID:       o.ID,
		Lines:         make([]OrderLine, 0, len(o.Items)),
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Tax:           o.Tax,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Email:         o.ShippingInfo.Email,
		OrderDate:     o.OrderDate,
	}
	for _, l := range o.Items {
		p.Lines = append(p.Lines, OrderLine{
			ProductID: l.ID,
			Title:     l.Title,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
		})
	}
	return p
}
