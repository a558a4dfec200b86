package store

import (
	"sort"
	"sync"
	"time"

	"github.com/shashiranjanraj/tattvam/app/models"
)

// OrderStore owns the order map. Order items are snapshots: the store
// copies the slice on the way in and on the way out, so callers can
// never mutate a stored order's items.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[uint]models.Order
	nextID uint
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[uint]models.Order), nextID: 1}
}

// Create inserts a new order with the next sequential id, status
// pending and a creation timestamp.
func (s *OrderStore) Create(o models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	o.Status = models.StatusPending
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = nil
	o.Items = copyItems(o.Items)

	s.orders[o.ID] = o
	return copyOrder(o)
}

// Get returns the order with the given id.
func (s *OrderStore) Get(id uint) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}
	return copyOrder(o), true
}

// ListForUser returns the user's orders newest first (created_at
// descending, higher id first on ties), sliced by [skip, skip+limit).
func (s *OrderStore) ListForUser(userID uint, skip, limit int) []models.Order {
	s.mu.RLock()
	matched := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			matched = append(matched, copyOrder(o))
		}
	}
	s.mu.RUnlock()

	return sortAndSlice(matched, skip, limit)
}

// ListAll returns every order newest first. Admin surface.
func (s *OrderStore) ListAll(skip, limit int) []models.Order {
	s.mu.RLock()
	all := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		all = append(all, copyOrder(o))
	}
	s.mu.RUnlock()

	return sortAndSlice(all, skip, limit)
}

// SetStatus overwrites the order status and stamps updated_at.
// Transition legality is the service's concern.
func (s *OrderStore) SetStatus(id uint, status models.OrderStatus) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, false
	}

	o.Status = status
	now := time.Now().UTC()
	o.UpdatedAt = &now

	s.orders[id] = o
	return copyOrder(o), true
}

func sortAndSlice(orders []models.Order, skip, limit int) []models.Order {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})

	if skip < 0 {
		skip = 0
	}
	if skip >= len(orders) {
		return []models.Order{}
	}
	end := skip + limit
	if limit <= 0 || end > len(orders) {
		end = len(orders)
	}
	return orders[skip:end]
}

func copyItems(items []models.OrderItem) []models.OrderItem {
	out := make([]models.OrderItem, len(items))
	copy(out, items)
	return out
}

func copyOrder(o models.Order) models.Order {
	o.Items = copyItems(o.Items)
	return o
}

func (s *OrderStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[uint]models.Order)
	s.nextID = 1
}
