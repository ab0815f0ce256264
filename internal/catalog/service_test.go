package catalog

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/hyperjump/hondana/internal/models"
	"github.com/hyperjump/hondana/internal/storage"
)

type mockStore struct {
	categories []models.Category
	items      map[string][]models.Item
	err        error

	lastCollection string
	lastPredicate  *models.Predicate
	lastSort       models.SortDirective
	lastLimit      int64
}

func (m *mockStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.categories, m.err
}

func (m *mockStore) GetCategory(ctx context.Context, name string) (*models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.categories {
		if c.Name == name {
			cat := c
			return &cat, nil
		}
	}
	return nil, storage.ErrCategoryNotFound
}

func (m *mockStore) FindItems(ctx context.Context, collection string, pred *models.Predicate, sort models.SortDirective, limit int64) ([]models.Item, error) {
	m.lastCollection = collection
	m.lastPredicate = pred
	m.lastSort = sort
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	items := m.items[collection]
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (m *mockStore) Close(ctx context.Context) error { return nil }

func newTestService(store *mockStore) *Service {
	return NewService(store, NewRegistry(store), zap.NewNop())
}

func TestQuery_EmptyCategory(t *testing.T) {
	svc := newTestService(&mockStore{})
	for _, category := range []string{"", "   "} {
		_, err := svc.Query(context.Background(), category, models.FilterCriteria{}, "")
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Query(%q): got %v, want ErrInvalidArgument", category, err)
		}
	}
}

func TestQuery_UnknownCategory(t *testing.T) {
	store := &mockStore{categories: []models.Category{{Name: "Books"}}}
	svc := newTestService(store)
	_, err := svc.Query(context.Background(), "Gadgets", models.FilterCriteria{}, "")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestQuery_ResolvesTrimmedCategory(t *testing.T) {
	store := &mockStore{
		categories: []models.Category{{Name: "Books"}},
		items:      map[string][]models.Item{"Books": {{Title: "Dune"}}},
	}
	svc := newTestService(store)
	items, err := svc.Query(context.Background(), "  Books  ", models.FilterCriteria{}, "")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if store.lastCollection != "Books" {
		t.Errorf("collection: got %q, want Books", store.lastCollection)
	}
	if len(items) != 1 || items[0].Title != "Dune" {
		t.Errorf("items: got %v", items)
	}
}

func TestQuery_ExplicitCollectionMapping(t *testing.T) {
	store := &mockStore{
		categories: []models.Category{{Name: "books", Collection: "Books"}},
		items:      map[string][]models.Item{"Books": {{Title: "Dune"}}},
	}
	svc := newTestService(store)
	if _, err := svc.Query(context.Background(), "books", models.FilterCriteria{}, ""); err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if store.lastCollection != "Books" {
		t.Errorf("collection: got %q, want Books", store.lastCollection)
	}
}

func TestQuery_NoMatchCarriesPredicate(t *testing.T) {
	store := &mockStore{categories: []models.Category{{Name: "Books"}}}
	svc := newTestService(store)
	criteria := models.FilterCriteria{MinPrice: "10", MaxPrice: "20"}
	_, err := svc.Query(context.Background(), "Books", criteria, "asc")
	var noMatch *NoMatchError
	if !errors.As(err, &noMatch) {
		t.Fatalf("got %v, want NoMatchError", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NoMatchError should unwrap to ErrNotFound")
	}
	p := noMatch.Predicate
	if p.MinPrice == nil || *p.MinPrice != 10 || p.MaxPrice == nil || *p.MaxPrice != 20 {
		t.Errorf("predicate bounds: got %+v", p)
	}
	if noMatch.Category != "Books" {
		t.Errorf("category: got %q", noMatch.Category)
	}
}

func TestQuery_AppliesSort(t *testing.T) {
	store := &mockStore{
		categories: []models.Category{{Name: "Books"}},
		items:      map[string][]models.Item{"Books": {{Title: "Dune", Price: 9.99}}},
	}
	svc := newTestService(store)
	if _, err := svc.Query(context.Background(), "Books", models.FilterCriteria{}, "asc"); err != nil {
		t.Fatalf("Query error: %v", err)
	}
	want := models.SortDirective{Field: "price", Direction: models.SortAscending}
	if store.lastSort != want {
		t.Errorf("sort: got %+v, want %+v", store.lastSort, want)
	}
	if store.lastLimit != 0 {
		t.Errorf("limit: got %d, want 0 (unlimited)", store.lastLimit)
	}
}

func TestQuery_MalformedBound(t *testing.T) {
	store := &mockStore{categories: []models.Category{{Name: "Books"}}}
	svc := newTestService(store)
	_, err := svc.Query(context.Background(), "Books", models.FilterCriteria{MinRating: "abc"}, "")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestCategories_EmptyStoreIsNotFound(t *testing.T) {
	svc := newTestService(&mockStore{})
	_, err := svc.Categories(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCategories_ListsAll(t *testing.T) {
	store := &mockStore{categories: []models.Category{{Name: "Books"}, {Name: "Movies"}}}
	svc := newTestService(store)
	cats, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories error: %v", err)
	}
	if len(cats) != 2 {
		t.Errorf("categories: got %d, want 2", len(cats))
	}
}

func TestCategories_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	svc := newTestService(&mockStore{err: storeErr})
	_, err := svc.Categories(context.Background())
	if !errors.Is(err, storeErr) {
		t.Errorf("got %v, want wrapped store error", err)
	}
}
