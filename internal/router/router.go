package router

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Product   *handler.ProductHandler
	Auth      *handler.AuthHandler
	Cart      *handler.CartHandler
	Favorites *handler.FavoritesHandler
	Booking   *handler.BookingHandler
	Chat      *handler.ChatHandler
	Dashboard *handler.DashboardHandler
}

// NewHandlers builds the handlers over the manager's catalogue. Booking dates
// are read in the server's local time zone.
func NewHandlers(manager *session.Manager, logger zerolog.Logger) Handlers {
	c := manager.Catalog()
	return Handlers{
		Product:   handler.NewProductHandler(c, logger),
		Auth:      handler.NewAuthHandler(logger),
		Cart:      handler.NewCartHandler(c, logger),
		Favorites: handler.NewFavoritesHandler(c, logger),
		Booking:   handler.NewBookingHandler(c, time.Local, logger),
		Chat:      handler.NewChatHandler(logger),
		Dashboard: handler.NewDashboardHandler(logger),
	}
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, manager *session.Manager, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS, then Session on /api
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "sessions": %d}`, manager.Len())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Session(manager, logger))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Get("/categories", h.Product.Categories)
			r.Get("/{id}", h.Product.GetByID)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/register", h.Auth.Register)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
			r.Post("/dialog", h.Auth.OpenDialog)
			r.Delete("/dialog", h.Auth.CloseDialog)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Delete("/", h.Cart.Clear)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{id}", h.Cart.UpdateItem)
			r.Delete("/items/{id}", h.Cart.RemoveItem)
			r.Post("/checkout", h.Cart.Checkout)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", h.Favorites.List)
			r.Post("/{id}", h.Favorites.Toggle)
			r.Delete("/{id}", h.Favorites.Remove)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", h.Booking.List)
			r.Post("/", h.Booking.Create)
			r.Delete("/{id}", h.Booking.Remove)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Get("/", h.Chat.History)
			r.Post("/", h.Chat.Send)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/reports", h.Dashboard.Reports)
			r.Get("/summary", h.Dashboard.Summary)
			r.Get("/users", h.Dashboard.Users)
			r.Get("/products", h.Dashboard.Products)
			r.Post("/products", h.Dashboard.AddProduct)
		})
	})

	return r
}
