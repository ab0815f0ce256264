// Package recommend implements the genre-based recommendation lookup.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/catalog"
	"github.com/hyperjump/hondana/internal/models"
	"github.com/hyperjump/hondana/internal/storage"
)

// Service looks up items whose genres intersect a requested set, capped at a
// fixed number of results, in store order.
type Service struct {
	store      storage.Store
	collection string
	limit      int64
	logger     *zap.Logger
}

// NewService creates a recommendation service reading from the named
// collection. Zero values fall back to the "Books" collection and a cap of 4.
func NewService(store storage.Store, collection string, limit int64, logger *zap.Logger) *Service {
	if collection == "" {
		collection = "Books"
	}
	if limit <= 0 {
		limit = 4
	}
	return &Service{store: store, collection: collection, limit: limit, logger: logger}
}

// Recommend returns up to the configured number of items matching any of the
// supplied genres. The genre list must contain at least one non-blank entry.
func (s *Service) Recommend(ctx context.Context, genres []string) ([]models.Item, error) {
	cleaned := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			cleaned = append(cleaned, g)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: genres must be a non-empty list", catalog.ErrInvalidArgument)
	}
	s.logger.Debug("recommendation lookup",
		zap.Strings("genres", cleaned),
		zap.String("collection", s.collection),
	)
	pred := &models.Predicate{Genres: cleaned}
	return s.store.FindItems(ctx, s.collection, pred, models.SortDirective{}, s.limit)
}
