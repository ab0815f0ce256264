// Package models defines core data structures for categories, items, and catalog queries.
package models

import (
	"github.com/goccy/go-json"
)

// Category is a client-visible grouping of items. Collection names the
// backing store collection explicitly; when empty, the category name itself
// is used.
type Category struct {
	Name       string `bson:"name" json:"name"`
	Collection string `bson:"collection,omitempty" json:"collection,omitempty"`
}

// CollectionName returns the store collection backing this category.
func (c Category) CollectionName() string {
	if c.Collection != "" {
		return c.Collection
	}
	return c.Name
}

// Item is a catalog record. Fields beyond the known ones are preserved in
// Extra and flattened back into JSON responses unchanged.
type Item struct {
	Title    string                 `bson:"title" json:"title"`
	Rating   float64                `bson:"rating,omitempty" json:"rating,omitempty"`
	Price    float64                `bson:"price,omitempty" json:"price,omitempty"`
	Genres   []string               `bson:"genres,omitempty" json:"genres,omitempty"`
	Language string                 `bson:"language,omitempty" json:"language,omitempty"`
	Extra    map[string]interface{} `bson:",inline" json:"-"`
}

// MarshalJSON flattens Extra into the top-level object. Known fields win on
// key collisions.
func (it Item) MarshalJSON() ([]byte, error) {
	type plain Item
	base, err := json.Marshal(plain(it))
	if err != nil {
		return nil, err
	}
	if len(it.Extra) == 0 {
		return base, nil
	}
	merged := make(map[string]interface{}, len(it.Extra)+5)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range it.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
