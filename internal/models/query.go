package models

// FilterCriteria carries the raw, optional, string-typed filter parameters
// exactly as received from the client. Empty string means "not supplied".
type FilterCriteria struct {
	Name      string
	MinRating string
	MaxRating string
	MinPrice  string
	MaxPrice  string
	Genre     string
	Language  string
}

// Predicate is the structured form of FilterCriteria handed to the storage
// layer. Each numeric attribute keeps its min and max bound in independent
// optional fields, so the order the bounds arrive in can never overwrite a
// previously set bound on the same attribute.
type Predicate struct {
	// Title matches as a case-insensitive substring anywhere in the item title.
	Title     *string  `json:"title,omitempty"`
	MinRating *float64 `json:"minRating,omitempty"`
	MaxRating *float64 `json:"maxRating,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	// Genres matches items whose genre set intersects this set.
	Genres []string `json:"genres,omitempty"`
	// Languages matches items whose language is a member of this set.
	Languages []string `json:"languages,omitempty"`
}

// IsZero reports whether no criteria were supplied.
func (p *Predicate) IsZero() bool {
	return p == nil || (p.Title == nil &&
		p.MinRating == nil && p.MaxRating == nil &&
		p.MinPrice == nil && p.MaxPrice == nil &&
		len(p.Genres) == 0 && len(p.Languages) == 0)
}

// SortDirection is the ordering applied to a query result.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// SortDirective names a field and the direction to order it by.
// The zero value means natural store order.
type SortDirective struct {
	Field     string
	Direction SortDirection
}
