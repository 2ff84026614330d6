package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storage"
)

// Store owns the cart for one shopping session. Transitions are serialised and never fail;
// storage errors are logged and the in-memory state stays authoritative.
type Store struct {
	kv     storage.Store
	logger *zap.Logger

	mu    sync.Mutex
	state State
}

func NewStore(kv storage.Store, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger, state: State{Lines: []Line{}}}
}

// Load reads the persisted lines once and hydrates the cart. Missing or unreadable data
// leaves an empty cart.
func (s *Store) Load(ctx context.Context) {
	var lines []Line
	ok, err := storage.ReadJSON(ctx, s.kv, storage.CartKey, &lines)
	switch {
	case errors.Is(err, storage.ErrCorrupt):
		s.logger.Warn("discarding corrupt cart", zap.Error(err))
	case err != nil:
		s.logger.Warn("read cart failed", zap.Error(err))
	case ok:
		s.logger.Info("cart hydrated", zap.Int("lines", len(lines)))
	}
	s.Dispatch(ctx, Hydrate{Lines: lines})
}

// Dispatch applies cmd and returns the resulting state.
func (s *Store) Dispatch(ctx context.Context, cmd Command) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := cmd.(AddMany); ok && c.Quantity < 1 {
		s.logger.Warn("ignoring add with non-positive quantity",
			zap.Int("productId", c.Product.ID), zap.Int("quantity", c.Quantity))
	}

	s.state = Reduce(s.state, cmd)

	if persists(cmd) {
		// written under the lock so storage sees states in transition order
		if err := storage.WriteJSON(ctx, s.kv, storage.CartKey, s.state.Lines); err != nil {
			s.logger.Warn("persist cart failed", zap.Error(err))
		}
	}
	return s.state.clone()
}

func (s *Store) Add(ctx context.Context, p catalog.Product) State {
	return s.Dispatch(ctx, Add{Product: p})
}

func (s *Store) AddMany(ctx context.Context, p catalog.Product, quantity int) State {
	return s.Dispatch(ctx, AddMany{Product: p, Quantity: quantity})
}

func (s *Store) Remove(ctx context.Context, productID int) State {
	return s.Dispatch(ctx, Remove{ProductID: productID})
}

func (s *Store) SetQuantity(ctx context.Context, productID, quantity int) State {
	return s.Dispatch(ctx, SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) Clear(ctx context.Context) State {
	return s.Dispatch(ctx, Clear{})
}

func (s *Store) TogglePanel(ctx context.Context) State {
	return s.Dispatch(ctx, TogglePanel{})
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) Lines() []Line {
	return s.Snapshot().Lines
}
