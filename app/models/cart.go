package models

// CartItem is one entry in a user's cart. At most one entry exists per
// (user, product) pair; adding the same product again accumulates.
type CartItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
