package repository

import (
	"context"
	"testing"

	"tienda-api/internal/domain"
	"tienda-api/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.User{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, domain.User{Email: "Ana@Example.com", Name: "Ana"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.User{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
