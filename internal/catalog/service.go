package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/models"
	"github.com/hyperjump/hondana/internal/storage"
)

// Service orchestrates category resolution, predicate and sort construction,
// and query execution.
type Service struct {
	store    storage.Store
	registry *Registry
	logger   *zap.Logger
}

// NewService creates a catalog query service with the given dependencies.
func NewService(store storage.Store, registry *Registry, logger *zap.Logger) *Service {
	return &Service{store: store, registry: registry, logger: logger}
}

// Categories lists all known categories.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.registry.List(ctx)
}

// Query resolves categoryID, applies criteria and the sortPrice ordering,
// and returns the matching items in result order. Zero matches fail with a
// NoMatchError carrying the predicate that was applied.
func (s *Service) Query(ctx context.Context, categoryID string, criteria models.FilterCriteria, sortPrice string) ([]models.Item, error) {
	collection, err := s.registry.Resolve(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	pred, err := BuildPredicate(criteria)
	if err != nil {
		return nil, err
	}
	sort := BuildSort(sortPrice)
	s.logger.Debug("category query",
		zap.String("collection", collection),
		zap.Any("predicate", pred),
		zap.String("sort_price", sortPrice),
	)
	items, err := s.store.FindItems(ctx, collection, pred, sort, 0)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &NoMatchError{Category: strings.TrimSpace(categoryID), Predicate: pred}
	}
	return items, nil
}
