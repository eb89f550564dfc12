package storage

import (
	"context"
	"errors"

	"github.com/vovakirdan/tunehunt/internal/content"
	"github.com/vovakirdan/tunehunt/internal/registry"
)

func init() {
	registry.Register("catalog", "real names from the local SQLite catalog", func(opts registry.Options) (content.Source, error) {
		if opts.CatalogPath == "" {
			return nil, errors.New("catalog path is required")
		}
		store, err := Open(opts.CatalogPath)
		if err != nil {
			return nil, err
		}
		return &CatalogSource{Store: store}, nil
	})
}

// CatalogSource serves the catalog as a content source.
type CatalogSource struct {
	Store *Store
}

func (c *CatalogSource) Name() string { return "catalog" }

// Fetch returns all catalog names.
func (c *CatalogSource) Fetch(ctx context.Context) (content.Names, error) {
	return c.Store.Names(ctx)
}

// Close releases the underlying database.
func (c *CatalogSource) Close() error {
	return c.Store.Close()
}
