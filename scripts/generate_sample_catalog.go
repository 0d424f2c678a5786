package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"storefront/internal/catalog"
	"storefront/internal/model"
)

// Writes the built-in catalogue as data/catalog/products.json and a gzipped
// copy, for use with CATALOG_PATH or upload under S3_PREFIX.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := catalog.MockProducts()

	for _, name := range []string{"products.json", "products.json.gz"} {
		filePath := filepath.Join(dataDir, name)

		if err := writeCatalogFile(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", name, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}
}

func writeCatalogFile(filePath string, products []model.Product) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if filepath.Ext(filePath) != ".gz" {
		return encode(file, products)
	}

	gzipWriter := gzip.NewWriter(file)
	if err := encode(gzipWriter, products); err != nil {
		return err
	}
	return gzipWriter.Close()
}

func encode(w io.Writer, products []model.Product) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}
	return nil
}
