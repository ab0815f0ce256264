package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hyperjump/hondana/internal/models"
)

// BuildPredicate translates raw filter parameters into a structured
// predicate. Every input is optional; an absent input imposes no constraint
// on its field. Each bound is assigned to its own field, so supplying a
// minimum can never erase a previously supplied maximum or vice versa.
func BuildPredicate(c models.FilterCriteria) (*models.Predicate, error) {
	p := &models.Predicate{}
	if name := strings.TrimSpace(c.Name); name != "" {
		p.Title = &name
	}
	var err error
	if p.MinRating, err = parseBound("minRating", c.MinRating); err != nil {
		return nil, err
	}
	if p.MaxRating, err = parseBound("maxRating", c.MaxRating); err != nil {
		return nil, err
	}
	if p.MinPrice, err = parseBound("minPrice", c.MinPrice); err != nil {
		return nil, err
	}
	if p.MaxPrice, err = parseBound("maxPrice", c.MaxPrice); err != nil {
		return nil, err
	}
	p.Genres = splitList(c.Genre)
	p.Languages = splitList(c.Language)
	return p, nil
}

// parseBound parses an optional numeric filter parameter. Empty means the
// bound is absent; anything else must parse as a float.
func parseBound(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, field)
	}
	return &v, nil
}

// splitList splits a comma-separated parameter, trimming each element and
// dropping empties. Returns nil when nothing remains.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
