package models

import "time"

// Product represents a product in the catalogue.
type Product struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Category     string     `json:"category"`
	ImageURL     string     `json:"image_url"`
	Stock        int        `json:"stock"`
	Rating       float64    `json:"rating"`
	ReviewsCount int        `json:"reviews_count"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ProductPatch carries the optional fields of a partial product update.
// Nil fields are left untouched by Apply.
type ProductPatch struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	Category     *string  `json:"category"`
	ImageURL     *string  `json:"image_url"`
	Stock        *int     `json:"stock"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`
	IsActive     *bool    `json:"is_active"`
}

// Apply merges the present fields of the patch into p.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.ReviewsCount != nil {
		p.ReviewsCount = *patch.ReviewsCount
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
}
