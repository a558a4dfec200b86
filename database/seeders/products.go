package seeders

import (
	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
)

// sampleProducts is the starter catalogue.
var sampleProducts = []models.Product{
	{
		Name:         "Premium Basmati Rice",
		Description:  "Aromatic long-grain basmati rice from Punjab",
		Price:        450.0,
		Category:     "Food & Grocery",
		ImageURL:     "https://images.unsplash.com/photo-1586201375761-83865001e31c?w=400",
		Stock:        100,
		Rating:       4.5,
		ReviewsCount: 128,
	},
	{
		Name:         "Silk Saree - Kanjeevaram",
		Description:  "Traditional South Indian silk saree with gold zari work",
		Price:        25000.0,
		Category:     "Clothing",
		ImageURL:     "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400",
		Stock:        15,
		Rating:       4.8,
		ReviewsCount: 45,
	},
	{
		Name:         "Ayurvedic Turmeric Powder",
		Description:  "Pure organic turmeric powder for health and beauty",
		Price:        180.0,
		Category:     "Health & Wellness",
		ImageURL:     "https://images.unsplash.com/photo-1609501676725-7186f757a64d?w=400",
		Stock:        200,
		Rating:       4.3,
		ReviewsCount: 89,
	},
	{
		Name:         "Handcrafted Brass Diya Set",
		Description:  "Traditional brass oil lamps for festivals and prayers",
		Price:        850.0,
		Category:     "Home & Decor",
		ImageURL:     "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400",
		Stock:        50,
		Rating:       4.6,
		ReviewsCount: 67,
	},
	{
		Name:         "Spice Collection - Garam Masala",
		Description:  "Authentic blend of Indian spices for traditional cooking",
		Price:        320.0,
		Category:     "Food & Grocery",
		ImageURL:     "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400",
		Stock:        75,
		Rating:       4.7,
		ReviewsCount: 156,
	},
}

func init() {
	Register(Seeder{Name: "products", Run: seedProducts})
}

// seedProducts loads the starter catalogue into an empty product store.
func seedProducts(s *store.Store) error {
	if len(s.Products.List("", "", 0, 1)) > 0 {
		return nil
	}

	for _, p := range sampleProducts {
		s.Products.Seed(p)
	}
	return nil
}
