package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/browse"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
)

// CatalogClient is the remote catalog as the handlers use it.
type CatalogClient interface {
	GetProduct(ctx context.Context, id int) (catalog.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]catalog.Product, error)
}

type Deps struct {
	Shelf    *browse.Shelf
	Catalog  CatalogClient
	Cart     *cart.Store
	Orders   *order.Store
	Checkout *checkout.Service
	Events   events.Publisher
	Logger   *zap.Logger

	CORSAllowOrigins []string
}

type Handler struct {
	Deps
}

func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Events == nil {
		d.Events = events.NopPublisher{}
	}
	h := &Handler{Deps: d}

	r := chi.NewRouter()
	r.Use(CorrelationID)
	r.Use(middleware.RealIP)
	r.Use(Recover(d.Logger))
	r.Use(RequestLogger(d.Logger))
	r.Use(CORS(d.CORSAllowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api/catalog", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{category}/products", h.ListProductsByCategory)
		r.Get("/products", h.BrowseProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Post("/refresh", h.RefreshCatalog)
	})

	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/toggle", h.ToggleCart)
		r.Post("/items", h.AddCartItem)
		r.Put("/items/{productId}", h.SetCartItemQuantity)
		r.Delete("/items/{productId}", h.RemoveCartItem)
	})

	r.Route("/api/checkout", func(r chi.Router) {
		r.Get("/quote", h.Quote)
		r.Post("/", h.PlaceOrder)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/toggle", h.ToggleOrders)
		r.Get("/{orderId}", h.GetOrder)
		r.Patch("/{orderId}/status", h.UpdateOrderStatus)
	})

	return r
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func metadata(r *http.Request) events.Metadata {
	return events.Metadata{CorrelationID: GetCorrelationID(r.Context())}
}
