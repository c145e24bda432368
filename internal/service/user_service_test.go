package service

import (
	"context"
	"testing"

	"tienda-api/internal/domain"
	"tienda-api/internal/repository"
	"tienda-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture() (UserService, repository.UserRepository) {
	users := repository.NewUserRepository(storage.NewMemoryStore())
	return NewUserService(users), users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newUserFixture()
	ctx := context.Background()

	profile, err := svc.Register(ctx, RegisterInput{
		Email:    "ana@example.com",
		Password: "secreto123",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, profile.ID)
	assert.Equal(t, "Ana", profile.Name)

	stored, err := users.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "x", Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "y", Name: "Ana"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestLogin(t *testing.T) {
	svc, _ := newUserFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "ana@example.com", Password: "secreto123", Name: "Ana"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		profile, err := svc.Login(ctx, "ana@example.com", "secreto123")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", profile.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ana@example.com", "incorrecto")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nadie@example.com", "secreto123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestRegisterProfileHidesPasswordHash(t *testing.T) {
	svc, _ := newUserFixture()

	profile, err := svc.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "secreto123",
		Name:     "Ana",
	})
	require.NoError(t, err)

	// The profile type carries no password field at all; spot-check the
	// public fields are all that came back.
	assert.Equal(t, domain.UserProfile{ID: 1, Email: "ana@example.com", Name: "Ana"}, *profile)
}
