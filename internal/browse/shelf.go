package browse

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type Loader interface {
	LoadSnapshot(ctx context.Context) (catalog.Snapshot, error)
}

// Shelf holds the catalog as last loaded. A failed load is logged and leaves whatever was
// there before, which on first start is an empty catalog.
type Shelf struct {
	loader Loader
	logger *zap.Logger

	mu      sync.RWMutex
	snap    catalog.Snapshot
	loading bool
	gen     uint64
}

func NewShelf(loader Loader, logger *zap.Logger) *Shelf {
	return &Shelf{loader: loader, logger: logger}
}

// Load fetches the catalog. When loads overlap only the most recently started one is kept.
func (s *Shelf) Load(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	snap, err := s.loader.LoadSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug("discarding stale catalog load")
		return err
	}
	s.loading = false

	if err != nil {
		s.logger.Warn("catalog load failed", zap.Error(err))
		return err
	}

	s.snap = snap
	s.logger.Info("catalog loaded",
		zap.Int("products", len(snap.Products)),
		zap.Int("categories", len(snap.Categories)))
	return nil
}

func (s *Shelf) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Shelf) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Product(nil), s.snap.Products...)
}

func (s *Shelf) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.snap.Categories...)
}

func (s *Shelf) Visible(q Query) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.snap.Products, q)
}

func (s *Shelf) Find(id int) (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.snap.Products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
