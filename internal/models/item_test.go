package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestCategoryCollectionName(t *testing.T) {
	if got := (Category{Name: "Books"}).CollectionName(); got != "Books" {
		t.Errorf("got %q, want Books", got)
	}
	if got := (Category{Name: "books", Collection: "Books"}).CollectionName(); got != "Books" {
		t.Errorf("got %q, want explicit collection", got)
	}
}

func TestItemMarshalJSON_FlattensExtra(t *testing.T) {
	it := Item{
		Title: "Dune",
		Price: 12.5,
		Extra: map[string]interface{}{"publisher": "Chilton", "pages": 412},
	}
	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["title"] != "Dune" {
		t.Errorf("title: got %v", out["title"])
	}
	if out["publisher"] != "Chilton" {
		t.Errorf("publisher: got %v", out["publisher"])
	}
	if out["pages"] != float64(412) {
		t.Errorf("pages: got %v", out["pages"])
	}
}

func TestItemMarshalJSON_KnownFieldsWin(t *testing.T) {
	it := Item{
		Title: "Dune",
		Extra: map[string]interface{}{"title": "shadowed"},
	}
	data, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out["title"] != "Dune" {
		t.Errorf("title: got %v, want struct field to win", out["title"])
	}
}

func TestPredicateIsZero(t *testing.T) {
	if !(&Predicate{}).IsZero() {
		t.Error("empty predicate should be zero")
	}
	v := 1.0
	if (&Predicate{MinPrice: &v}).IsZero() {
		t.Error("predicate with a bound should not be zero")
	}
	if (&Predicate{Genres: []string{"Fantasy"}}).IsZero() {
		t.Error("predicate with genres should not be zero")
	}
}
