// Package store holds all shared mutable state: users, products, carts
// and orders live in process-local maps guarded by per-store locks.
// Nothing is persisted; the maps exist for the lifetime of the process.
//
// Every read-modify-write sequence (accumulate a cart quantity, merge a
// product patch, assign the next id) holds its store's write lock for
// the whole sequence, so the stores are safe under concurrent requests.
// Stores hand out copies, never references into their maps.
package store

// Store bundles the four entity stores and is passed by reference to
// every service at construction time.
type Store struct {
	Users    *UserStore
	Products *ProductStore
	Carts    *CartStore
	Orders   *OrderStore
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Users:    NewUserStore(),
		Products: NewProductStore(),
		Carts:    NewCartStore(),
		Orders:   NewOrderStore(),
	}
}

// Reset empties every store. Test helper; id sequences restart at 1.
func (s *Store) Reset() {
	s.Users.reset()
	s.Products.reset()
	s.Carts.reset()
	s.Orders.reset()
}
