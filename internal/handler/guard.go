package handler

import (
	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/shell"
)

// Prompts for the pages that are only shown to signed-in users.
const (
	viewCartPrompt      = "Please sign in to view your cart."
	viewFavoritesPrompt = "Please sign in to view your favorites."
	viewBookingsPrompt  = "Please sign in to view your bookings."
)

// requireSignedIn sends signed-out users to the sign-in page with a notice.
func requireSignedIn(s *session.Session, prompt string) error {
	if s.Auth.IsAuthenticated() {
		return nil
	}
	s.Notifications.Notify(shell.Alert("Authentication required", prompt))
	s.Navigation.Navigate(shell.PathSignIn)
	return model.ErrAuthRequired
}
