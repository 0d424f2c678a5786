package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is a product in the cart with a positive quantity.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the discounted line total.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.DiscountedPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Booking reserves a product for a date. It is not a purchase.
type Booking struct {
	Product Product   `json:"product"`
	Date    time.Time `json:"date"`
}

// CartView is the cart payload returned to clients.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// CartItemRequest represents the request payload for adding to the cart.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// QuantityRequest represents the request payload for setting a line quantity.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// BookingRequest represents the request payload for booking a product.
// Date uses the 2006-01-02 layout.
type BookingRequest struct {
	ProductID string `json:"productId"`
	Date      string `json:"date"`
}
