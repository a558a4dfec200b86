package services

import (
	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
	"github.com/shashiranjanraj/tattvam/pkg/metrics"
)

// CartItemInput is the cart-add request body.
type CartItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,gt=0"`
}

// CartViewItem is one cart entry joined with its live product.
type CartViewItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartView is the cart as returned by GET /cart: entries joined with
// live products, plus totals. Entries whose product has been deleted
// are omitted and contribute nothing to the totals.
type CartView struct {
	Items       []CartViewItem `json:"items"`
	TotalItems  int            `json:"total_items"`
	TotalAmount float64        `json:"total_amount"`
}

// ItemsAsOrderItems converts the cart entries into order item snapshots,
// ready to hand to OrderService.Create.
func (v CartView) ItemsAsOrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, models.OrderItem{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	return items
}

// CartService maintains per-user carts. Totals are always computed
// against live catalogue prices, never prices at add time.
type CartService struct {
	products *store.ProductStore
	carts    *store.CartStore
}

func NewCartService(products *store.ProductStore, carts *store.CartStore) *CartService {
	return &CartService{products: products, carts: carts}
}

// View returns the user's cart joined with live products.
func (s *CartService) View(userID uint) CartView {
	view := CartView{Items: []CartViewItem{}}

	for _, item := range s.carts.Get(userID) {
		product, ok := s.products.Get(item.ProductID)
		if !ok {
			continue // product deleted since it was added
		}
		view.Items = append(view.Items, CartViewItem{Product: product, Quantity: item.Quantity})
		view.TotalItems += item.Quantity
		view.TotalAmount += product.Price * float64(item.Quantity)
	}

	return view
}

// Add puts quantity of a product into the user's cart, accumulating
// onto an existing entry. Fails with Validation for quantity <= 0 and
// NotFound for an unknown product.
func (s *CartService) Add(userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return apperr.Validation("Quantity must be a positive integer")
	}
	if _, ok := s.products.Get(productID); !ok {
		return apperr.NotFound("Product")
	}

	s.carts.Add(userID, productID, quantity)
	metrics.CartItemsAdded.Inc()
	return nil
}

// SetQuantity overwrites the quantity of an existing entry; a quantity
// <= 0 removes it. Fails with NotFound when the entry does not exist.
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if !s.carts.SetQuantity(userID, productID, quantity) {
		return apperr.NotFound("Cart item")
	}
	return nil
}

// Remove deletes one entry from the user's cart.
func (s *CartService) Remove(userID, productID uint) error {
	if !s.carts.Remove(userID, productID) {
		return apperr.NotFound("Cart item")
	}
	return nil
}

// Clear empties the user's cart. Clearing a nonexistent cart is fine.
func (s *CartService) Clear(userID uint) {
	s.carts.Clear(userID)
}

// Total returns the live total of the user's cart.
func (s *CartService) Total(userID uint) float64 {
	return s.View(userID).TotalAmount
}

// ItemCount returns the number of items in the user's cart, counting
// only entries whose product still exists.
func (s *CartService) ItemCount(userID uint) int {
	return s.View(userID).TotalItems
}
