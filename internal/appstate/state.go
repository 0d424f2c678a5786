// Package appstate holds the favorites, cart and bookings of one session.
package appstate

import (
	"context"
	"sync"
	"time"

	"storefront/internal/clock"
	"storefront/internal/model"
	"storefront/internal/shell"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Gate runs action only for a signed-in user. It reports whether the action ran.
type Gate interface {
	RequireAuth(redirectPath, reason string, action func()) bool
}

// Prompts shown when a gated action needs a sign-in.
const (
	promptFavorites = "Please sign in to add items to your favorites."
	promptCart      = "Please sign in to add items to your cart."
	promptBooking   = "Please sign in to book products."
	promptCheckout  = "Please sign in to checkout."
)

// BookingDateLayout is the layout used in booking notifications.
const BookingDateLayout = "1/2/2006"

// State is the collection state of one session. Collections live in memory only.
type State struct {
	mu        sync.Mutex
	favorites []model.Product
	cart      []model.CartLine
	bookings  []model.Booking

	gate          Gate
	notifier      shell.Notifier
	checkoutDelay time.Duration
	now           func() time.Time
	logger        zerolog.Logger
}

// New creates an empty state. checkoutDelay is the simulated order latency.
func New(gate Gate, notifier shell.Notifier, checkoutDelay time.Duration, logger zerolog.Logger) *State {
	return &State{
		gate:          gate,
		notifier:      notifier,
		checkoutDelay: checkoutDelay,
		now:           time.Now,
		logger:        logger.With().Str("component", "appstate").Logger(),
	}
}

// AddToFavorites adds p, or removes it when it is already a favorite.
func (s *State) AddToFavorites(p model.Product) error {
	if !s.gate.RequireAuth("", promptFavorites, func() { s.toggleFavorite(p) }) {
		return model.ErrAuthRequired
	}
	return nil
}

func (s *State) toggleFavorite(p model.Product) {
	s.mu.Lock()
	if indexOfProduct(s.favorites, p.ID) >= 0 {
		s.mu.Unlock()
		s.RemoveFromFavorites(p.ID)
		return
	}
	s.favorites = append(s.favorites, p)
	s.mu.Unlock()

	s.logger.Debug().Str("product_id", p.ID).Msg("favorite added")
	s.notifier.Notify(shell.Info("Added to favorites", p.Name+" has been added to your favorites."))
}

// RemoveFromFavorites drops productID from the favorites.
func (s *State) RemoveFromFavorites(productID string) {
	s.mu.Lock()
	if i := indexOfProduct(s.favorites, productID); i >= 0 {
		s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
	}
	s.mu.Unlock()

	s.notifier.Notify(shell.Info("Removed from favorites", "Item has been removed from your favorites."))
}

// IsInFavorites reports whether productID is a favorite.
func (s *State) IsInFavorites(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfProduct(s.favorites, productID) >= 0
}

// AddToCart adds quantity units of p, merging with an existing line.
func (s *State) AddToCart(p model.Product, quantity int) error {
	var err error
	ran := s.gate.RequireAuth(shell.PathCart, promptCart, func() {
		if quantity < 1 {
			s.notifier.Notify(shell.Alert("Invalid quantity", model.ErrInvalidQuantity.Message))
			err = model.ErrInvalidQuantity
			return
		}
		s.addLine(p, quantity)
	})
	if !ran {
		return model.ErrAuthRequired
	}
	return err
}

func (s *State) addLine(p model.Product, quantity int) {
	s.mu.Lock()
	if i := indexOfLine(s.cart, p.ID); i >= 0 {
		s.cart[i].Quantity += quantity
	} else {
		s.cart = append(s.cart, model.CartLine{Product: p, Quantity: quantity})
	}
	s.mu.Unlock()

	s.logger.Debug().
		Str("product_id", p.ID).
		Int("quantity", quantity).
		Msg("cart line added")
	s.notifier.Notify(shell.Info("Added to cart", p.Name+" has been added to your cart."))
}

// RemoveFromCart drops the line for productID.
func (s *State) RemoveFromCart(productID string) {
	s.mu.Lock()
	if i := indexOfLine(s.cart, productID); i >= 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
	}
	s.mu.Unlock()

	s.notifier.Notify(shell.Info("Removed from cart", "Item has been removed from your cart."))
}

// UpdateCartQuantity sets the quantity of productID. A quantity of zero or
// less removes the line. Unknown products are ignored.
func (s *State) UpdateCartQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOfLine(s.cart, productID); i >= 0 {
		s.cart[i].Quantity = quantity
	}
}

// CartItemQuantity returns the quantity of productID, or 0.
func (s *State) CartItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOfLine(s.cart, productID); i >= 0 {
		return s.cart[i].Quantity
	}
	return 0
}

// CartTotal returns the sum of the discounted line totals.
func (s *State) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return total(s.cart)
}

func total(lines []model.CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

// Cart returns the lines and their total.
func (s *State) Cart() model.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CartView{Lines: copyLines(s.cart), Total: total(s.cart)}
}

// BookProduct reserves p for date. Dates before today are rejected.
func (s *State) BookProduct(p model.Product, date time.Time) error {
	var err error
	ran := s.gate.RequireAuth(shell.ProductPath(p.ID), promptBooking, func() {
		if !s.bookable(date) {
			s.notifier.Notify(shell.Alert("Invalid date", model.ErrInvalidBookingDate.Message))
			err = model.ErrInvalidBookingDate
			return
		}

		s.mu.Lock()
		s.bookings = append(s.bookings, model.Booking{Product: p, Date: date})
		s.mu.Unlock()

		s.logger.Debug().
			Str("product_id", p.ID).
			Time("date", date).
			Msg("product booked")
		s.notifier.Notify(shell.Info("Product booked",
			p.Name+" has been booked for "+date.Format(BookingDateLayout)+"."))
	})
	if !ran {
		return model.ErrAuthRequired
	}
	return err
}

// bookable reports whether date falls on today or later in date's location.
func (s *State) bookable(date time.Time) bool {
	if date.IsZero() {
		return false
	}
	now := s.now().In(date.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return !date.Before(today)
}

// RemoveBooking drops every booking of productID.
func (s *State) RemoveBooking(productID string) {
	s.mu.Lock()
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.Product.ID != productID {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	s.mu.Unlock()

	s.notifier.Notify(shell.Info("Booking removed", "Your booking has been removed."))
}

// ClearCart empties the cart silently.
func (s *State) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

// Checkout waits for the simulated order latency and empties the cart. No
// order is recorded.
func (s *State) Checkout(ctx context.Context) error {
	authed := false
	s.gate.RequireAuth(shell.PathCart, promptCheckout, func() { authed = true })
	if !authed {
		return model.ErrAuthRequired
	}

	s.mu.Lock()
	lines := len(s.cart)
	s.mu.Unlock()
	if lines == 0 {
		return model.ErrEmptyCart
	}

	if err := clock.Sleep(ctx, s.checkoutDelay); err != nil {
		return err
	}

	s.ClearCart()

	s.logger.Info().Int("lines", lines).Msg("order placed")
	s.notifier.Notify(shell.Info("Order placed!", "Your order has been successfully placed."))
	return nil
}

// Favorites returns a copy of the favorites.
func (s *State) Favorites() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// CartLines returns a copy of the cart lines.
func (s *State) CartLines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.cart)
}

// Bookings returns a copy of the bookings.
func (s *State) Bookings() []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func copyLines(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}

func indexOfProduct(products []model.Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func indexOfLine(lines []model.CartLine, id string) int {
	for i, l := range lines {
		if l.Product.ID == id {
			return i
		}
	}
	return -1
}
