package repository

import (
	"context"
	"errors"
	"strings"

	"tienda-api/internal/domain"
	"tienda-api/internal/storage"
)

// ErrUserNotFound is returned when no user matches the given email.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores registered users keyed by email.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	store storage.RecordStore
}

// NewUserRepository creates a UserRepository over a record store.
func NewUserRepository(store storage.RecordStore) UserRepository {
	return &userRepository{store: store}
}

// Create assigns the next free id and appends the user. Duplicate emails
// are rejected with a ConflictError.
func (r *userRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	users, err := storage.LoadAll[domain.User](ctx, r.store, storage.EntityUsers)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.User{}, &domain.ConflictError{Message: "user with this email already exists"}
		}
	}

	user.ID = nextID(users, func(u domain.User) int { return u.ID })
	users = append(users, user)

	if err := storage.SaveAll(ctx, r.store, storage.EntityUsers, users); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := storage.LoadAll[domain.User](ctx, r.store, storage.EntityUsers)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
