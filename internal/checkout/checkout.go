// Package checkout turns the current cart into a placed order.
package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/pricing"
)

type CartStore interface {
	Snapshot() cart.State
	Clear(ctx context.Context) cart.State
	TogglePanel(ctx context.Context) cart.State
}

type OrderStore interface {
	AddOrder(ctx context.Context, o order.Order) order.Order
}

type Service struct {
	cart   CartStore
	orders OrderStore
	events events.Publisher
	logger *zap.Logger

	// simulated payment processing; it always succeeds
	paymentDelay time.Duration

	mu sync.Mutex
}

func NewService(c CartStore, o OrderStore, pub events.Publisher, paymentDelay time.Duration, logger *zap.Logger) *Service {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &Service{cart: c, orders: o, events: pub, paymentDelay: paymentDelay, logger: logger}
}

// Quote prices the cart as it stands.
func (s *Service) Quote() pricing.Summary {
	return pricing.Price(s.cart.Snapshot().Lines)
}

// PlaceOrder validates req, waits out the payment delay, records the order and empties the
// cart. Only one checkout runs at a time.
func (s *Service) PlaceOrder(ctx context.Context, req Request, meta events.Metadata) (order.Order, error) {
	if err := req.Validate(); err != nil {
		return order.Order{}, err
	}
	method, _ := order.ParsePaymentMethod(string(req.PaymentMethod))

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart.Snapshot().Lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	if err := s.processPayment(ctx); err != nil {
		return order.Order{}, fmt.Errorf("payment: %w", err)
	}

	// the cart as it is once payment went through
	snap := s.cart.Snapshot()
	if len(snap.Lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	placed := s.orders.AddOrder(ctx, order.CreateOrder(snap.Lines, req.ShippingInfo, method))

	s.cart.Clear(ctx)
	if snap.Open {
		s.cart.TogglePanel(ctx)
	}

	s.logger.Info("order placed",
		zap.String("orderId", placed.ID),
		zap.String("paymentMethod", string(placed.PaymentMethod)),
		zap.String("total", placed.Total.StringFixed(2)),
		zap.String("correlationId", meta.CorrelationID))

	if err := s.events.PublishOrderPlaced(context.WithoutCancel(ctx), placed, meta); err != nil {
		s.logger.Warn("publish OrderPlaced failed", zap.String("orderId", placed.ID), zap.Error(err))
	}

	return placed, nil
}

func (s *Service) processPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
