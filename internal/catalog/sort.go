package catalog

import "github.com/hyperjump/hondana/internal/models"

// BuildSort maps the sortPrice parameter to an ordering directive. Absent
// means natural store order. The value "asc" (exact match) sorts ascending
// on price; any other non-empty value sorts descending. Price is the only
// sortable field.
func BuildSort(sortPrice string) models.SortDirective {
	if sortPrice == "" {
		return models.SortDirective{}
	}
	dir := models.SortDescending
	if sortPrice == "asc" {
		dir = models.SortAscending
	}
	return models.SortDirective{Field: "price", Direction: dir}
}
