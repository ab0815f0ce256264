package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hyperjump/hondana/internal/models"
)

// MongoStore is a Store backed by a MongoDB database. The handle is
// established once at startup and never mutated afterwards, so it is safe
// for concurrent use by all requests.
type MongoStore struct {
	client               *mongo.Client
	db                   *mongo.Database
	categoriesCollection string
}

// NewMongoStore connects to uri, pings the deployment, and returns a store
// over the named database. The caller owns Close.
func NewMongoStore(ctx context.Context, uri, database, categoriesCollection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client:               client,
		db:                   client.Database(database),
		categoriesCollection: categoriesCollection,
	}, nil
}

// ListCategories returns every record in the categories collection.
func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := s.db.Collection(s.categoriesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	cats := []models.Category{}
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}

// GetCategory looks a category up by name.
func (s *MongoStore) GetCategory(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := s.db.Collection(s.categoriesCollection).FindOne(ctx, bson.M{"name": name}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", name, err)
	}
	return &cat, nil
}

// FindItems runs pred against the named collection, ordered by sort.
func (s *MongoStore) FindItems(ctx context.Context, collection string, pred *models.Predicate, sort models.SortDirective, limit int64) ([]models.Item, error) {
	opts := options.Find()
	if d := sortDoc(sort); d != nil {
		opts.SetSort(d)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filterDoc(pred), opts)
	if err != nil {
		return nil, fmt.Errorf("find items in %q: %w", collection, err)
	}
	items := []models.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items from %q: %w", collection, err)
	}
	return items, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// filterDoc translates a predicate into a MongoDB filter document. Both
// bounds of a numeric attribute land in one range document, so the result
// is the same regardless of which bound was supplied first.
func filterDoc(p *models.Predicate) bson.M {
	filter := bson.M{}
	if p == nil {
		return filter
	}
	if p.Title != nil {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(*p.Title), Options: "i"}
	}
	if rng := rangeDoc(p.MinRating, p.MaxRating); rng != nil {
		filter["rating"] = rng
	}
	if rng := rangeDoc(p.MinPrice, p.MaxPrice); rng != nil {
		filter["price"] = rng
	}
	if len(p.Genres) > 0 {
		filter["genres"] = bson.M{"$in": p.Genres}
	}
	if len(p.Languages) > 0 {
		filter["language"] = bson.M{"$in": p.Languages}
	}
	return filter
}

func rangeDoc(min, max *float64) bson.M {
	if min == nil && max == nil {
		return nil
	}
	rng := bson.M{}
	if min != nil {
		rng["$gte"] = *min
	}
	if max != nil {
		rng["$lte"] = *max
	}
	return rng
}

func sortDoc(s models.SortDirective) bson.D {
	switch s.Direction {
	case models.SortAscending:
		return bson.D{{Key: s.Field, Value: 1}}
	case models.SortDescending:
		return bson.D{{Key: s.Field, Value: -1}}
	}
	return nil
}
