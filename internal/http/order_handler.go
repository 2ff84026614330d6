package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/pricing"
)

type orderResponse struct {
	order.Order
	ShowDelivery bool            `json:"showDelivery"`
	Display      pricing.Display `json:"display"`
}

func newOrderResponse(o order.Order) orderResponse {
	sum := pricing.Summary{Subtotal: o.Subtotal, Shipping: o.Shipping, Tax: o.Tax, Total: o.Total}
	return orderResponse{Order: o, ShowDelivery: o.ShowsDelivery(), Display: sum.Display()}
}

type ordersResponse struct {
	Orders []orderResponse `json:"orders"`
	Open   bool            `json:"open"`
}

func newOrdersResponse(s order.State) ordersResponse {
	out := ordersResponse{Orders: make([]orderResponse, 0, len(s.Orders)), Open: s.Open}
	for _, o := range s.Orders {
		out.Orders = append(out.Orders, newOrderResponse(o))
	}
	return out
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newOrdersResponse(h.Orders.Snapshot()))
}

func (h *Handler) ToggleOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newOrdersResponse(h.Orders.TogglePanel(r.Context())))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Orders.Get(chi.URLParam(r, "orderId"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, newOrderResponse(o))
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad request")
		return
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if !h.Orders.UpdateStatus(r.Context(), orderID, status) {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}

	if err := h.Events.PublishOrderStatusChanged(r.Context(), orderID, status, metadata(r)); err != nil {
		h.Logger.Warn("publish OrderStatusChanged failed", zap.String("orderId", orderID), zap.Error(err))
	}

	o, _ := h.Orders.Get(orderID)
	writeJSON(w, http.StatusOK, newOrderResponse(o))
}
