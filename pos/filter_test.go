package pos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	catalog := []models.Product{
		{ID: "1", Name: "Latte", CategoryID: "coffee"},
		{ID: "2", Name: "Muffin", CategoryID: "bakery"},
	}

	assert.Equal(t, []string{"1"}, ids(pos.FilterProducts(catalog, "coffee", "")))
	assert.Equal(t, []string{"2"}, ids(pos.FilterProducts(catalog, models.CategoryAll, "muf")))
	assert.Equal(t, []string{"1", "2"}, ids(pos.FilterProducts(catalog, models.CategoryAll, "")))
	assert.Empty(t, pos.FilterProducts(catalog, "coffee", "muf"))
}

func TestAllCategoryChipMatchesEverything(t *testing.T) {
	register := newTestRegister(t)

	assert.Equal(t, models.CategoryAll, models.AllCategory.ID)
	assert.Equal(t, "All Menu", models.AllCategory.Label)
	assert.Equal(t, "fast-food", models.AllCategory.Icon)

	// Selecting the chip passes the whole catalog through.
	register.SetSelectedCategory(models.AllCategory.ID)
	assert.Len(t, register.FilteredProducts(), len(register.Catalog()))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	catalog := []models.Product{
		{ID: "1", Name: "Iced Americano", CategoryID: "coffee"},
	}

	assert.Len(t, pos.FilterProducts(catalog, models.CategoryAll, "ICED"), 1)
	assert.Len(t, pos.FilterProducts(catalog, models.CategoryAll, "americano"), 1)
	assert.Empty(t, pos.FilterProducts(catalog, models.CategoryAll, "mocha"))
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	register := newTestRegister(t)
	register.SetSelectedCategory("bakery")

	got := ids(register.FilteredProducts())
	assert.Equal(t, []string{"5", "6", "7", "8"}, got)
}

func TestFilterCombinesCategoryAndSearch(t *testing.T) {
	register := newTestRegister(t)
	register.SetSelectedCategory("drinks")
	register.SetSearchQuery("lemon")

	got := register.FilteredProducts()
	require.Len(t, got, 2)
	assert.Equal(t, "Fresh Lemonade", got[0].Name)
	assert.Equal(t, "Iced Lemon Tea", got[1].Name)
}
