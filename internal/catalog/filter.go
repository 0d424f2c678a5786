package catalog

import (
	"strings"

	"storefront/internal/model"

	"github.com/shopspring/decimal"
)

// Filter selects products. The zero value matches everything; all set
// predicates must hold.
type Filter struct {
	// Search is matched case-insensitively against name, description and tags.
	Search string
	// Category must equal the product category. Empty or "All" matches any.
	Category string
	// MinPrice and MaxPrice bound the list price inclusively. A nil bound is open.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// InStockOnly drops products that are out of stock.
	InStockOnly bool
	// DiscountedOnly drops products without a discount.
	DiscountedOnly bool
}

// Match reports whether p satisfies every predicate of f.
func (f Filter) Match(p model.Product) bool {
	return f.matchSearch(p) &&
		f.matchCategory(p) &&
		f.matchPrice(p) &&
		(!f.InStockOnly || p.InStock) &&
		(!f.DiscountedOnly || p.HasDiscount())
}

func (f Filter) matchSearch(p model.Product) bool {
	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (f Filter) matchCategory(p model.Product) bool {
	return f.Category == "" || f.Category == CategoryAll || p.Category == f.Category
}

func (f Filter) matchPrice(p model.Product) bool {
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// Apply returns the products matching f in their original order.
func (f Filter) Apply(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
