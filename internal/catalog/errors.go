package catalog

import (
	"errors"
	"fmt"

	"github.com/hyperjump/hondana/internal/models"
)

var (
	// ErrInvalidArgument marks missing or malformed client input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks lookups that resolved to nothing.
	ErrNotFound = errors.New("not found")
)

// NoMatchError reports a category query that matched no items. It carries
// the predicate that was applied so callers can echo the effective filters
// back to the client.
type NoMatchError struct {
	Category  string
	Predicate *models.Predicate
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no items found in category %s with the given criteria", e.Category)
}

func (e *NoMatchError) Unwrap() error { return ErrNotFound }
