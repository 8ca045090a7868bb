package pos

import (
	"strings"

	"github.com/yeremiapane/cafe-pos/models"
)

// FilterProducts projects the catalog through a category selection
// and a search query. "all" passes every category; the query is a
// case-insensitive substring match on the product name, and an empty
// query matches everything. Catalog order is preserved.
func FilterProducts(catalog []models.Product, selectedCategory, searchQuery string) []models.Product {
	query := strings.ToLower(searchQuery)

	out := make([]models.Product, 0, len(catalog))
	for _, p := range catalog {
		if selectedCategory != models.CategoryAll && p.CategoryID != selectedCategory {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
