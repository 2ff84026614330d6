package order

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
)

// Store owns the order history for one shopping session.
type Store struct {
	kv     storage.Store
	logger *zap.Logger

	now func() time.Time
	rng *rand.Rand

	mu    sync.Mutex
	state State
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

func NewStore(kv storage.Store, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		state:  State{Orders: []Order{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Load(ctx context.Context) {
	var orders []Order
	ok, err := storage.ReadJSON(ctx, s.kv, storage.OrdersKey, &orders)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		s.logger.Warn("discarding corrupt order history", zap.Error(err))
	case err != nil:
		s.logger.Warn("read order history failed", zap.Error(err))
	case ok:
		s.logger.Info("order history hydrated", zap.Int("orders", len(orders)))
	}
	s.Dispatch(ctx, Hydrate{Orders: orders})
}

func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatchLocked(ctx, cmd)
}

func (s *Store) dispatchLocked(ctx context.Context, cmd Command) State {
	s.state = Reduce(s.state, cmd)

	if persists(cmd) {
		if err := storage.WriteJSON(ctx, s.kv, storage.OrdersKey, s.state.Orders); err != nil {
			s.logger.Warn("persist order history failed", zap.Error(err))
		}
	}
	return s.state.clone()
}

// AddOrder stamps the delivery estimate, prepends o and returns it as stored.
func (s *Store) AddOrder(ctx context.Context, o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.EstimatedDelivery = EstimateDelivery(s.now(), s.rng)
	s.dispatchLocked(ctx, Add{Order: o})

	s.logger.Info("order added",
		zap.String("orderId", o.ID),
		zap.String("total", o.Total.StringFixed(2)),
		zap.Int("items", len(o.Items)))
	return o.clone()
}

// UpdateStatus reports whether an order with that id exists. Unknown ids change nothing.
func (s *Store) UpdateStatus(ctx context.Context, orderID string, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.state.Find(orderID)
	s.dispatchLocked(ctx, UpdateStatus{OrderID: orderID, Status: status})
	return found
}

func (s *Store) TogglePanel(ctx context.Context) State {
	return s.Dispatch(ctx, TogglePanel{})
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) Orders() []Order {
	return s.Snapshot().Orders
}

func (s *Store) Get(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Find(id)
}
