package store

import (
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
)

// UserStore owns the user map. Users are never deleted.
type UserStore struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uint]models.User), nextID: 1}
}

// Create inserts a new user, assigning the next sequential id. Fails
// with Conflict when the email or username is already taken (emails are
// compared case-insensitively).
func (s *UserStore) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, apperr.Conflict("Email already registered")
		}
		if existing.Username == u.Username {
			return models.User{}, apperr.Conflict("Username already taken")
		}
	}

	u.ID = s.nextID
	s.nextID++
	u.IsActive = true
	u.CreatedAt = time.Now().UTC()

	s.users[u.ID] = u
	return u, nil
}

// Get returns the user with the given id.
func (s *UserStore) Get(id uint) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// FindByEmail returns the user with the given email (case-insensitive).
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// Update merges the present patch fields into the stored user and
// returns the updated copy.
func (s *UserStore) Update(id uint, patch models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}

	u.Apply(patch)
	now := time.Now().UTC()
	u.UpdatedAt = &now

	s.users[id] = u
	return u, true
}

func (s *UserStore) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[uint]models.User)
	s.nextID = 1
}
