package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/pricing"
)

type cartResponse struct {
	Lines   []cart.Line     `json:"lines"`
	Open    bool            `json:"open"`
	Count   int             `json:"count"`
	Summary pricing.Summary `json:"summary"`
	Display pricing.Display `json:"display"`
}

func newCartResponse(s cart.State) cartResponse {
	sum := pricing.Price(s.Lines)
	return cartResponse{
		Lines:   s.Lines,
		Open:    s.Open,
		Count:   s.Count(),
		Summary: sum,
		Display: sum.Display(),
	}
}

type addItemRequest struct {
	ProductID int  `json:"productId"`
	Quantity  *int `json:"quantity,omitempty"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.Cart.Snapshot()))
}

// AddCartItem adds one unit, or Quantity units when given. The product comes from the loaded
// catalog, falling back to the remote one.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}
	if req.ProductID <= 0 {
		writeError(w, r, http.StatusBadRequest, "productId must be positive")
		return
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		writeError(w, r, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	p, ok := h.Shelf.Find(req.ProductID)
	if !ok {
		var err error
		p, err = h.Catalog.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				writeError(w, r, http.StatusNotFound, "product not found")
				return
			}
			h.writeCatalogError(w, r, err)
			return
		}
	}

	var st cart.State
	if req.Quantity == nil {
		st = h.Cart.Add(r.Context(), p)
	} else {
		st = h.Cart.AddMany(r.Context(), p, *req.Quantity)
	}
	writeJSON(w, http.StatusOK, newCartResponse(st))
}

func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	var req setQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(h.Cart.SetQuantity(r.Context(), id, req.Quantity)))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(h.Cart.Remove(r.Context(), id)))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.Cart.Clear(r.Context())))
}

func (h *Handler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartResponse(h.Cart.TogglePanel(r.Context())))
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return 0, false
	}
	return id, true
}
