package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned by login when the email is unknown or
// the password does not match. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmptyOrder rejects order requests whose item list is empty.
var ErrEmptyOrder = &ValidationError{Message: "order must contain at least one item"}

// ValidationError reports a request that decoded fine but violates a
// domain rule. Maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a missing record. The message always carries the
// id the caller asked for. Maps to HTTP 404.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// InsufficientStockError names the product whose stored stock cannot cover
// the requested quantity. Maps to HTTP 400.
type InsufficientStockError struct {
	ProductID int
	Name      string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Name)
}

// ConflictError reports a uniqueness violation, such as registering an
// email that already exists. Maps to HTTP 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
