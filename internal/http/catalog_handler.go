package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/browse"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
)

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productsResponse struct {
	Title    string            `json:"title"`
	Query    browse.Query      `json:"query"`
	Loading  bool              `json:"loading"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	menu := browse.MenuCategories(h.Shelf.Categories())
	out := make([]categoryResponse, 0, len(menu))
	for _, c := range menu {
		out = append(out, categoryResponse{ID: c, Name: browse.DisplayName(c)})
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out, "loading": h.Shelf.Loading()})
}

// BrowseProducts filters the loaded catalog. A catalog that failed to load yields an empty list.
func (h *Handler) BrowseProducts(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	view, err := browse.ParseView(qs.Get("view"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	clothes, err := browse.ParseClothesFilter(qs.Get("clothes"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	q := browse.Query{View: view, Category: qs.Get("category"), Clothes: clothes, Search: qs.Get("q")}
	products := h.Shelf.Visible(q)

	writeJSON(w, http.StatusOK, productsResponse{
		Title:    browse.Title(q),
		Query:    q,
		Loading:  h.Shelf.Loading(),
		Count:    len(products),
		Products: products,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	p, err := h.Catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := url.PathUnescape(chi.URLParam(r, "category"))
	if err != nil || category == "" {
		writeError(w, r, http.StatusBadRequest, "invalid category")
		return
	}

	products, err := h.Catalog.ListProductsByCategory(r.Context(), category)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"name":     browse.DisplayName(category),
		"count":    len(products),
		"products": products,
	})
}

func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Shelf.Load(r.Context()); err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products":   len(h.Shelf.Products()),
		"categories": len(h.Shelf.Categories()),
	})
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "product not found")
	case errors.Is(err, catalog.ErrMalformedResponse):
		h.Logger.Warn("malformed catalog response", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "catalog returned a malformed response")
	default:
		h.Logger.Warn("catalog request failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "catalog unavailable")
	}
}
