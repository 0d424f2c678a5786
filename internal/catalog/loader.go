package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a product list from some location.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// fileLoader implements Loader for JSON product files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a JSON array of products. Files ending in ".gz" are gunzipped first.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", path, err)
	}
	defer file.Close()

	products, err := decodeProducts(ctx, file, isGzip(path))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to decode catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully")

	return products, nil
}

func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// decodeProducts parses and validates a product array from r.
func decodeProducts(ctx context.Context, r io.Reader, gzipped bool) ([]model.Product, error) {
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&products); err != nil {
		return nil, err
	}

	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
	}
	return products, nil
}

func validateProduct(p model.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id")
	case p.Name == "":
		return fmt.Errorf("missing name")
	case p.Category == "":
		return fmt.Errorf("missing category")
	case p.Price.IsNegative():
		return fmt.Errorf("negative price")
	case p.Discount < 0 || p.Discount > 100:
		return fmt.Errorf("discount %d out of range", p.Discount)
	}
	return nil
}

// Load builds the catalogue from path using loader. An empty path yields the
// built-in catalogue.
func Load(ctx context.Context, loader Loader, path string, logger zerolog.Logger) (*Catalog, error) {
	if path == "" {
		logger.Info().Int("products", len(MockProducts())).Msg("using built-in catalogue")
		return NewMock(), nil
	}

	products, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return New(products), nil
}
