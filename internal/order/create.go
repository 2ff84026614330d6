package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/pricing"
)

// CreateOrder prices lines and stamps a new order. It has no side effects; the order is only
// kept once handed to Store.AddOrder.
func CreateOrder(lines []cart.Line, info ShippingInfo, method PaymentMethod) Order {
	return createAt(time.Now().UTC(), lines, info, method)
}

func createAt(now time.Time, lines []cart.Line, info ShippingInfo, method PaymentMethod) Order {
	items := make([]cart.Line, len(lines))
	copy(items, lines)

	sum := pricing.Price(items)
	return Order{
		ID:            NewID(now),
		Items:         items,
		Subtotal:      sum.Subtotal,
		Shipping:      sum.Shipping,
		Tax:           sum.Tax,
		Total:         sum.Total,
		OrderDate:     now,
		Status:        StatusProcessing,
		ShippingInfo:  info,
		PaymentMethod: method,
	}
}

// NewID returns "ORD-<unix millis>-<9 random chars>". Unique with high probability only;
// nothing checks for collisions.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}
