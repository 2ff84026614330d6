package httpapi

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/pricing"
)

type quoteResponse struct {
	Summary pricing.Summary `json:"summary"`
	Display pricing.Display `json:"display"`
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	sum := h.Checkout.Quote()
	writeJSON(w, http.StatusOK, quoteResponse{Summary: sum, Display: sum.Display()})
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	o, err := h.Checkout.PlaceOrder(r.Context(), req, metadata(r))
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:         "invalid checkout request",
				Fields:        verr.Fields,
				CorrelationID: GetCorrelationID(r.Context()),
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, r, http.StatusConflict, "cart is empty")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeError(w, r, http.StatusServiceUnavailable, "checkout interrupted")
		default:
			h.Logger.Error("checkout failed", zap.Error(err))
			writeError(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, newOrderResponse(o))
}
