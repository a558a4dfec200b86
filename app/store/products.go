package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/tattvam/app/models"
)

// ProductStore owns the product map. Ids start at 1 and grow
// monotonically; deleting a product never frees its id for reuse.
type ProductStore struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[uint]models.Product), nextID: 1}
}

// Create inserts a new product with the next sequential id. Rating and
// review count start at zero and the product is active, whatever the
// caller passed.
func (s *ProductStore) Create(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	p.Rating = 0
	p.ReviewsCount = 0
	p.IsActive = true
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil

	s.products[p.ID] = p
	return p
}

// Seed inserts a product keeping the caller's rating and review count,
// for the database seeders. Seeded rows look like any other fresh row:
// active, created now, never updated.
func (s *ProductStore) Seed(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	p.IsActive = true
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = nil

	s.products[p.ID] = p
	return p
}

// Get returns the product with the given id.
func (s *ProductStore) Get(id uint) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

// List filters by exact case-insensitive category, then by
// case-insensitive substring match against name or description, then
// slices [skip, skip+limit). A skip past the end yields an empty list.
func (s *ProductStore) List(category, search string, skip, limit int) []models.Product {
	s.mu.RLock()
	all := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		all = append(all, p)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	filtered := all[:0]
	needle := strings.ToLower(search)
	for _, p := range all {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	if skip < 0 {
		skip = 0
	}
	if skip >= len(filtered) {
		return []models.Product{}
	}
	end := skip + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}
	return filtered[skip:end]
}

// Categories returns the distinct category values across all products.
func (s *ProductStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, p := range s.products {
		seen[p.Category] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Update merges the present patch fields into the stored product and
// returns the updated copy.
func (s *ProductStore) Update(id uint, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}

	p.Apply(patch)
	now := time.Now().UTC()
	p.UpdatedAt = &now

	s.products[id] = p
	return p, true
}

// Delete removes a product. Existing cart entries and order snapshots
// referencing it are left alone; lookups against the deleted id simply
// miss.
func (s *ProductStore) Delete(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

func (s *ProductStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = make(map[uint]models.Product)
	s.nextID = 1
}
