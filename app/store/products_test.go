package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
)

func seedProducts(s *store.ProductStore) {
	s.Create(models.Product{Name: "Premium Basmati Rice", Description: "Aromatic long-grain basmati rice", Price: 450, Category: "Food & Grocery", Stock: 100})
	s.Create(models.Product{Name: "Silk Saree", Description: "Traditional silk saree", Price: 25000, Category: "Clothing", Stock: 15})
	s.Create(models.Product{Name: "Turmeric Powder", Description: "Pure organic turmeric", Price: 180, Category: "Food & Grocery", Stock: 200})
}

func TestCreateDefaults(t *testing.T) {
	s := store.NewProductStore()

	p := s.Create(models.Product{Name: "Diya Set", Price: 850, Category: "Home & Decor", Rating: 4.9, ReviewsCount: 12})

	assert.Equal(t, uint(1), p.ID)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewsCount)
	assert.True(t, p.IsActive)
}

func TestIDsAreNeverReused(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	require.True(t, s.Delete(3))
	p := s.Create(models.Product{Name: "Garam Masala", Price: 320, Category: "Food & Grocery"})

	assert.Equal(t, uint(4), p.ID)
}

func TestListFilters(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	grocery := s.List("food & grocery", "", 0, 100)
	require.Len(t, grocery, 2)
	assert.Equal(t, uint(1), grocery[0].ID)

	matched := s.List("", "TURMERIC", 0, 100)
	require.Len(t, matched, 1)
	assert.Equal(t, "Turmeric Powder", matched[0].Name)

	// search matches descriptions too
	matched = s.List("", "long-grain", 0, 100)
	require.Len(t, matched, 1)
	assert.Equal(t, "Premium Basmati Rice", matched[0].Name)

	both := s.List("food & grocery", "rice", 0, 100)
	require.Len(t, both, 1)
}

func TestListPagination(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	page := s.List("", "", 1, 1)
	require.Len(t, page, 1)
	assert.Equal(t, uint(2), page[0].ID)

	assert.Empty(t, s.List("", "", 10, 5))
	assert.Len(t, s.List("", "", -3, 100), 3) // negative skip clamps to 0
	assert.Len(t, s.List("", "", 2, 100), 1)  // short final page
}

func TestGetAndDelete(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	p, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Silk Saree", p.Name)

	assert.True(t, s.Delete(2))
	assert.False(t, s.Delete(2))

	_, ok = s.Get(2)
	assert.False(t, ok)
}

func TestUpdateMergesPatch(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	price := 475.0
	updated, ok := s.Update(1, models.ProductPatch{Price: &price})
	require.True(t, ok)

	assert.Equal(t, 475.0, updated.Price)
	assert.Equal(t, "Premium Basmati Rice", updated.Name) // untouched
	require.NotNil(t, updated.UpdatedAt)

	_, ok = s.Update(999, models.ProductPatch{Price: &price})
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	s := store.NewProductStore()
	seedProducts(s)

	assert.Equal(t, []string{"Clothing", "Food & Grocery"}, s.Categories())
}
