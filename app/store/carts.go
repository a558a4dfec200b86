package store

import (
	"sync"

	"github.com/shashiranjanraj/tattvam/app/models"
)

// CartStore owns the per-user cart map. Each cart is a slice of items
// in insertion order, with at most one entry per product.
type CartStore struct {
	mu    sync.RWMutex
	carts map[uint][]models.CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[uint][]models.CartItem)}
}

// Get returns a copy of the user's cart. A user with no cart yet gets
// an empty slice; reading never creates a cart.
func (s *CartStore) Get(userID uint) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[userID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// Add accumulates quantity onto an existing entry for the product, or
// appends a new entry preserving insertion order. The caller is
// responsible for checking that the product exists and quantity > 0.
func (s *CartStore) Add(userID, productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return
		}
	}
	s.carts[userID] = append(items, models.CartItem{ProductID: productID, Quantity: quantity})
}

// SetQuantity overwrites the stored quantity of an existing entry.
// A quantity <= 0 behaves as removal. Returns false when no entry for
// the product exists.
func (s *CartStore) SetQuantity(userID, productID uint, quantity int) bool {
	if quantity <= 0 {
		return s.Remove(userID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the entry for the product. Returns false when no
// entry existed; the cart is left unchanged in that case.
func (s *CartStore) Remove(userID, productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i := range items {
		if items[i].ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the user's cart. Returns true when a cart existed,
// even an already-empty one.
func (s *CartStore) Clear(userID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[userID]; !ok {
		return false
	}
	s.carts[userID] = []models.CartItem{}
	return true
}

// ItemCount returns the sum of quantities across the user's entries.
func (s *CartStore) ItemCount(userID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, item := range s.carts[userID] {
		total += item.Quantity
	}
	return total
}

func (s *CartStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts = make(map[uint][]models.CartItem)
}
