// Package catalog serves the read-only product list and its filters.
package catalog

import (
	"storefront/internal/model"
)

// Catalog is an immutable, ordered product list.
type Catalog struct {
	products []model.Product
	byID     map[string]int
}

// New builds a catalogue over products. Later duplicates of an ID are ignored.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// NewMock builds the built-in demo catalogue.
func NewMock() *Catalog {
	return New(MockProducts())
}

// All returns every product in catalogue order.
func (c *Catalog) All() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with id or model.ErrProductNotFound.
func (c *Catalog) Get(id string) (model.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Product{}, model.ErrProductNotFound
	}
	return c.products[i], nil
}

// Filter returns the products matching f.
func (c *Catalog) Filter(f Filter) []model.Product {
	return f.Apply(c.products)
}

// Categories returns "All" followed by each distinct category in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := []string{CategoryAll}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
