// Package services holds the business logic between the HTTP
// controllers and the in-memory stores.
package services

import (
	"fmt"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/config"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
	"github.com/shashiranjanraj/tattvam/pkg/auth"
	"github.com/shashiranjanraj/tattvam/pkg/event"
	"github.com/shashiranjanraj/tattvam/pkg/metrics"
)

// RegisterInput is the registration request body.
type RegisterInput struct {
	Username string `json:"username"  validate:"required,min=2,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Address  string `json:"address"   validate:"nullable,max=255"`
	Phone    string `json:"phone"     validate:"nullable,max=20"`
	Password string `json:"password"  validate:"required,min=6"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService registers and authenticates users and issues their tokens.
type AuthService struct {
	users *store.UserStore
}

func NewAuthService(users *store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user account and returns it with a fresh
// access token. Duplicate email or username fails with Conflict.
func (s *AuthService) Register(in RegisterInput) (models.User, string, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Address:      in.Address,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         models.RoleUser,
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, config.TokenTTL())
	if err != nil {
		return models.User{}, "", fmt.Errorf("issuing token: %w", err)
	}

	metrics.UsersRegistered.Inc()
	event.Fire("user.registered", user)

	return user, token, nil
}

// Login authenticates by email and password and returns the user with a
// fresh access token. Both an unknown email and a wrong password yield
// the same Unauthorized failure.
func (s *AuthService) Login(in LoginInput) (models.User, string, error) {
	user, ok := s.users.FindByEmail(in.Email)
	if !ok || !auth.CheckPassword(user.PasswordHash, in.Password) {
		return models.User{}, "", apperr.Unauthorized("Invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, config.TokenTTL())
	if err != nil {
		return models.User{}, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// GetUser returns the user record for an authenticated identity.
func (s *AuthService) GetUser(userID uint) (models.User, error) {
	user, ok := s.users.Get(userID)
	if !ok {
		return models.User{}, apperr.NotFound("User")
	}
	return user, nil
}

// UpdateProfile merges the present patch fields into the user's profile.
func (s *AuthService) UpdateProfile(userID uint, patch models.UserPatch) (models.User, error) {
	user, ok := s.users.Update(userID, patch)
	if !ok {
		return models.User{}, apperr.NotFound("User")
	}
	return user, nil
}
