package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{
			ID:       "p1",
			Name:     "Rain Jacket",
			Price:    decimal.RequireFromString("74.50"),
			Category: "Outerwear",
			Tags:     []string{"jacket"},
			InStock:  true,
			Discount: 5,
		},
		{
			ID:       "p2",
			Name:     "Wool Hat",
			Price:    decimal.RequireFromString("19.00"),
			Category: "Accessories",
		},
	}
}

// writeCatalogFile writes products as JSON, gzipped when the name ends in .gz.
func writeCatalogFile(t *testing.T, name string, products []model.Product) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	data, err := json.Marshal(products)
	require.NoError(t, err)

	if isGzip(name) {
		gz := gzip.NewWriter(file)
		_, err = gz.Write(data)
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		return path
	}

	_, err = file.Write(data)
	require.NoError(t, err)
	return path
}

func TestFileLoader_Load_JSON(t *testing.T) {
	path := writeCatalogFile(t, "catalog.json", sampleProducts())

	products, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Rain Jacket", products[0].Name)
	assert.True(t, decimal.RequireFromString("74.5").Equal(products[0].Price))
	assert.Equal(t, 5, products[0].Discount)
}

func TestFileLoader_Load_Gzip(t *testing.T) {
	path := writeCatalogFile(t, "catalog.json.gz", sampleProducts())

	products, err := NewFileLoader(zerolog.Nop()).Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids(products))
}

func TestFileLoader_Load_Errors(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	ctx := context.Background()

	t.Run("Missing file", func(t *testing.T) {
		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open catalogue file")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := loader.Load(ctx, path)
		require.Error(t, err)
	})

	t.Run("Not gzip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.gz")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))

		_, err := loader.Load(ctx, path)
		require.Error(t, err)
	})

	t.Run("Invalid product", func(t *testing.T) {
		bad := sampleProducts()
		bad[1].Discount = 150
		path := writeCatalogFile(t, "catalog.json", bad)

		_, err := loader.Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "product 1")
	})

	t.Run("Cancelled", func(t *testing.T) {
		path := writeCatalogFile(t, "catalog.json", sampleProducts())
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := loader.Load(cctx, path)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Empty path uses built-in catalogue", func(t *testing.T) {
		c, err := Load(ctx, &mockLoader{}, "", logger)
		require.NoError(t, err)
		assert.Equal(t, 8, c.Len())
	})

	t.Run("Configured path", func(t *testing.T) {
		path := writeCatalogFile(t, "catalog.json", sampleProducts())

		c, err := Load(ctx, NewFileLoader(logger), path, logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"All", "Outerwear", "Accessories"}, c.Categories())
	})

	t.Run("Loader failure", func(t *testing.T) {
		_, err := Load(ctx, &mockLoader{}, "catalog.json", logger)
		assert.Error(t, err)
	})
}
