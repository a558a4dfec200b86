package seeders

import (
	"errors"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/config"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
	"github.com/shashiranjanraj/tattvam/pkg/auth"
	"github.com/shashiranjanraj/tattvam/pkg/logger"
)

func init() {
	Register(Seeder{Name: "admin", Run: seedAdmin})
}

// seedAdmin creates the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Registration over the API only ever produces regular
// users, so this is the single way an admin comes into existence.
func seedAdmin(s *store.Store) error {
	email, password := config.AdminEmail(), config.AdminPassword()
	if email == "" || password == "" {
		logger.Warn("admin credentials not configured, no admin account seeded")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.Users.Create(models.User{
		Email:        email,
		Username:     "admin",
		FullName:     "Administrator",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if errors.Is(err, apperr.ErrConflict) {
		return nil // already seeded
	}
	return err
}
