package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tienda-api/internal/domain"
	"tienda-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the cost factor for password hashing.
const bcryptCost = 10

// RegisterInput carries a new account. Address is optional free-form
// client data.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Address  map[string]any
}

// UserService handles registration and login. Login returns the public
// profile only; there is no session or token layer.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)
}

type userService struct {
	users repository.UserRepository
	now   func() time.Time
}

// NewUserService creates a UserService over the user repository.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{
		users: users,
		now:   time.Now,
	}
}

// Register stores a new user with a bcrypt-hashed password. Duplicate
// emails surface as a ConflictError.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Address:      orEmpty(in.Address),
		RegisteredAt: s.now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := created.Profile()
	return &profile, nil
}

// Login verifies credentials. An unknown email and a wrong password both
// yield ErrInvalidCredentials.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile := user.Profile()
	return &profile, nil
}
