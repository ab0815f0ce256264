// Package storage defines the persistence interface for the catalog store.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/hondana/internal/models"
)

// ErrCategoryNotFound is returned when a category name is not in the
// categories collection.
var ErrCategoryNotFound = errors.New("category not found")

// Store defines the read operations the catalog performs against the store.
type Store interface {
	// ListCategories returns every record in the categories collection.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory returns the category with the given name, or
	// ErrCategoryNotFound when no such category exists.
	GetCategory(ctx context.Context, name string) (*models.Category, error)

	// FindItems runs pred against the named collection, ordered by sort.
	// A limit <= 0 means no limit. The result is never nil.
	FindItems(ctx context.Context, collection string, pred *models.Predicate, sort models.SortDirective, limit int64) ([]models.Item, error)

	Close(ctx context.Context) error
}
