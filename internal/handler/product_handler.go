package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/catalog"
	"storefront/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductCatalog is the read side of the catalogue served over HTTP.
type ProductCatalog interface {
	Get(id string) (model.Product, error)
	Filter(f catalog.Filter) []model.Product
	Categories() []string
}

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	catalog ProductCatalog
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog ProductCatalog, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products. Query parameters: search, category,
// minPrice, maxPrice, inStock and discounted.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := catalog.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}

	var err error
	if f.MinPrice, err = parsePrice(q.Get("minPrice")); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidParameter, "invalid minPrice parameter", h.logger)
		return
	}
	if f.MaxPrice, err = parsePrice(q.Get("maxPrice")); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidParameter, "invalid maxPrice parameter", h.logger)
		return
	}
	if f.InStockOnly, err = parseFlag(q.Get("inStock")); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidParameter, "invalid inStock parameter", h.logger)
		return
	}
	if f.DiscountedOnly, err = parseFlag(q.Get("discounted")); err != nil {
		writeBadRequest(w, r, model.ErrCodeInvalidParameter, "invalid discounted parameter", h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, h.catalog.Filter(f))
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.catalog.Categories())
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, r, http.StatusOK, product)
}

func parsePrice(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
