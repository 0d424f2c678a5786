package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount int
		expected string
	}{
		{name: "No discount", price: "59.99", discount: 0, expected: "59.99"},
		{name: "Ten percent", price: "59.99", discount: 10, expected: "53.991"},
		{name: "Half price", price: "20", discount: 50, expected: "10"},
		{name: "Free", price: "20", discount: 100, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: decimal.RequireFromString(tt.price), Discount: tt.discount}
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(p.DiscountedPrice()),
				"got %s", p.DiscountedPrice())
			assert.Equal(t, tt.discount > 0, p.HasDiscount())
		})
	}
}

func TestCartLine_Subtotal(t *testing.T) {
	line := CartLine{
		Product:  Product{Price: decimal.NewFromInt(20), Discount: 50},
		Quantity: 3,
	}
	assert.True(t, decimal.NewFromInt(30).Equal(line.Subtotal()))
}

func TestProduct_HasTag(t *testing.T) {
	p := Product{Tags: []string{"shoes", "formal"}}
	assert.True(t, p.HasTag("shoes"))
	assert.False(t, p.HasTag("sneakers"))
}

func TestUser_Role(t *testing.T) {
	assert.Equal(t, RoleAdmin, User{IsAdmin: true}.Role())
	assert.Equal(t, RoleUser, User{}.Role())
}

func TestAsDomainError(t *testing.T) {
	de, ok := AsDomainError(ErrEmptyCart)
	assert.True(t, ok)
	assert.Equal(t, ErrCodeEmptyCart, de.Code)

	_, ok = AsDomainError(assert.AnError)
	assert.False(t, ok)
}
