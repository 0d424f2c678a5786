package shell

import (
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestTray_Drain(t *testing.T) {
	tray := NewTray(zerolog.Nop())
	assert.Empty(t, tray.Drain())

	tray.Notify(Info("Added to cart", "Sneakers has been added to your cart."))
	tray.Notify(Alert("Login failed", "Invalid email or password. Please try again."))

	got := tray.Drain()
	assert.Len(t, got, 2)
	assert.Equal(t, model.VariantDefault, got[0].Variant)
	assert.Equal(t, model.VariantDestructive, got[1].Variant)

	assert.Empty(t, tray.Drain())
}

func TestRecorder_Take(t *testing.T) {
	rec := NewRecorder()
	assert.Equal(t, "", rec.Take())

	rec.Navigate(PathSignIn)
	rec.Navigate(ProductPath("3"))

	assert.Equal(t, "/products/3", rec.Take())
	assert.Equal(t, "", rec.Take())
}
