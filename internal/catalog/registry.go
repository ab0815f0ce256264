// Package catalog implements category resolution and the dynamic item query.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperjump/hondana/internal/models"
	"github.com/hyperjump/hondana/internal/storage"
)

// Registry resolves client-supplied category identifiers against the
// categories collection. Only categories recorded there resolve; a raw
// identifier is never used as a collection name directly.
type Registry struct {
	store storage.Store
}

// NewRegistry creates a registry over the given store.
func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// List returns every known category. An empty categories collection is
// reported as ErrNotFound rather than an empty success.
func (r *Registry) List(ctx context.Context) ([]models.Category, error) {
	cats, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrNotFound)
	}
	return cats, nil
}

// Resolve maps a category identifier to the collection backing it. The
// identifier is trimmed and must be non-empty; identifiers not present in
// the registry fail ErrNotFound.
func (r *Registry) Resolve(ctx context.Context, categoryID string) (string, error) {
	name := strings.TrimSpace(categoryID)
	if name == "" {
		return "", fmt.Errorf("%w: category is required", ErrInvalidArgument)
	}
	cat, err := r.store.GetCategory(ctx, name)
	if errors.Is(err, storage.ErrCategoryNotFound) {
		return "", fmt.Errorf("%w: unknown category %q", ErrNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return cat.CollectionName(), nil
}
