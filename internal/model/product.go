package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Product represents an immutable catalogue entry.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	Tags        []string        `json:"tags"`
	InStock     bool            `json:"inStock"`
	// Discount is a percentage between 0 and 100. Zero means no discount.
	Discount int `json:"discount,omitempty"`
}

// HasDiscount reports whether the product carries a discount.
func (p Product) HasDiscount() bool {
	return p.Discount > 0
}

// DiscountedPrice returns the unit price after the discount is applied.
func (p Product) DiscountedPrice() decimal.Decimal {
	if !p.HasDiscount() {
		return p.Price
	}
	off := p.Price.Mul(decimal.NewFromInt(int64(p.Discount))).Div(hundred)
	return p.Price.Sub(off)
}

// HasTag reports whether the product is tagged with tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
