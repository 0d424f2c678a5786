// Package dashboard serves the admin views: sales analytics, the user table
// and admin-entered products.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/model"
	"storefront/internal/shell"
	"storefront/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// KeyAdminProducts holds the admin-entered products as a JSON array.
const KeyAdminProducts = "adminProducts"

// Viewer exposes the signed-in user of the session.
type Viewer interface {
	User() *model.User
}

// Catalog is the read side of the product catalogue used by the dashboard.
type Catalog interface {
	PriceLookup
	All() []model.Product
}

// Dashboard is the admin view of one session.
type Dashboard struct {
	viewer    Viewer
	catalog   Catalog
	store     storage.Store
	notifier  shell.Notifier
	navigator shell.Navigator
	reports   []model.SalesReport
	users     []model.DashboardUser
	newID     func() string
	logger    zerolog.Logger
}

// New creates a dashboard over the demo reports and users.
func New(
	viewer Viewer,
	catalog Catalog,
	store storage.Store,
	notifier shell.Notifier,
	navigator shell.Navigator,
	logger zerolog.Logger,
) *Dashboard {
	return &Dashboard{
		viewer:    viewer,
		catalog:   catalog,
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		reports:   MockReports(),
		users:     MockUsers(),
		newID:     func() string { return uuid.NewString() },
		logger:    logger.With().Str("component", "dashboard").Logger(),
	}
}

// authorize admits administrators. Others are sent to the sign-in page or
// home and get ErrAuthRequired or ErrForbidden.
func (d *Dashboard) authorize() error {
	user := d.viewer.User()
	if user == nil {
		d.navigator.Navigate(shell.PathSignIn)
		return model.ErrAuthRequired
	}
	if !user.IsAdmin {
		d.logger.Warn().Str("user_id", user.ID).Msg("dashboard access denied")
		d.navigator.Navigate(shell.PathHome)
		return model.ErrForbidden
	}
	return nil
}

// Reports returns the daily sales reports.
func (d *Dashboard) Reports() ([]model.SalesReport, error) {
	if err := d.authorize(); err != nil {
		return nil, err
	}
	out := make([]model.SalesReport, len(d.reports))
	copy(out, d.reports)
	return out, nil
}

// Summary aggregates the sales reports.
func (d *Dashboard) Summary() (model.SalesSummary, error) {
	if err := d.authorize(); err != nil {
		return model.SalesSummary{}, err
	}
	return Summarize(d.reports, d.catalog), nil
}

// Users returns the users whose name or email contains search, ignoring case.
func (d *Dashboard) Users(search string) ([]model.DashboardUser, error) {
	if err := d.authorize(); err != nil {
		return nil, err
	}

	term := strings.ToLower(search)
	out := make([]model.DashboardUser, 0, len(d.users))
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

// Products returns the catalogue followed by admin-entered products, keeping
// those whose name or description contains search, ignoring case.
func (d *Dashboard) Products(ctx context.Context, search string) ([]model.Product, error) {
	if err := d.authorize(); err != nil {
		return nil, err
	}

	added, err := d.loadAdded(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(search)
	all := append(d.catalog.All(), added...)
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// AddProduct validates in and appends it to the admin-entered products.
func (d *Dashboard) AddProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	if err := d.authorize(); err != nil {
		return model.Product{}, err
	}

	p, err := d.validate(in)
	if err != nil {
		de, _ := model.AsDomainError(err)
		d.notifier.Notify(shell.Alert("Invalid product", de.Message))
		return model.Product{}, err
	}

	added, err := d.loadAdded(ctx)
	if err != nil {
		return model.Product{}, err
	}
	added = append(added, p)

	data, err := json.Marshal(added)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to encode admin products: %w", err)
	}
	if err := d.store.Set(ctx, KeyAdminProducts, string(data)); err != nil {
		return model.Product{}, fmt.Errorf("failed to save admin products: %w", err)
	}

	d.logger.Info().
		Str("product_id", p.ID).
		Str("name", p.Name).
		Msg("admin product added")
	d.notifier.Notify(shell.Info("Product added", p.Name+" has been added to the catalogue."))

	return p, nil
}

func (d *Dashboard) validate(in model.ProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Price) == "" {
		return model.Product{}, model.ErrMissingField
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || !price.IsPositive() {
		return model.Product{}, model.ErrInvalidPrice
	}

	if in.Discount < 0 || in.Discount > 100 {
		return model.Product{}, model.ErrInvalidDiscount
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	return model.Product{
		ID:          d.newID(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Tags:        tags,
		InStock:     in.InStock,
		Discount:    in.Discount,
	}, nil
}

func (d *Dashboard) loadAdded(ctx context.Context) ([]model.Product, error) {
	raw, err := d.store.Get(ctx, KeyAdminProducts)
	if errors.Is(err, storage.ErrNotFound) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read admin products: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("failed to decode admin products: %w", err)
	}
	return products, nil
}
