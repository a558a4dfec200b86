package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tattvam/app/models"
	"github.com/shashiranjanraj/tattvam/app/services"
	"github.com/shashiranjanraj/tattvam/app/store"
	"github.com/shashiranjanraj/tattvam/pkg/apperr"
	"github.com/shashiranjanraj/tattvam/pkg/auth"
)

func registerInput(username, email string) services.RegisterInput {
	return services.RegisterInput{
		Username: username,
		Email:    email,
		FullName: "Test User",
		Password: "secret1",
	}
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := services.NewAuthService(store.NewUserStore())

	user, token, err := svc.Register(registerInput("ravi", "ravi@example.com"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "user", user.Role)

	uid, err := auth.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := services.NewAuthService(store.NewUserStore())

	_, _, err := svc.Register(registerInput("one", "same@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(registerInput("two", "same@example.com"))
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterDistinctEmailsYieldIncreasingIDs(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := services.NewAuthService(store.NewUserStore())

	a, _, err := svc.Register(registerInput("a", "a@example.com"))
	require.NoError(t, err)
	b, _, err := svc.Register(registerInput("b", "b@example.com"))
	require.NoError(t, err)

	assert.Less(t, a.ID, b.ID)
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := services.NewAuthService(store.NewUserStore())

	_, _, err := svc.Register(registerInput("ravi", "ravi@example.com"))
	require.NoError(t, err)

	user, token, err := svc.Login(services.LoginInput{Email: "ravi@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ravi", user.Username)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(services.LoginInput{Email: "ravi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, _, err = svc.Login(services.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestUpdateProfile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := services.NewAuthService(store.NewUserStore())

	user, _, err := svc.Register(registerInput("ravi", "ravi@example.com"))
	require.NoError(t, err)

	name := "Ravi Kumar"
	updated, err := svc.UpdateProfile(user.ID, models.UserPatch{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", updated.FullName)
	assert.Equal(t, "ravi@example.com", updated.Email) // untouched
}
