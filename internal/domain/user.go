package domain

import "time"

// User is a registered customer. PasswordHash is a bcrypt hash; the raw
// password is never stored.
type User struct {
	ID           int            `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"password"`
	Name         string         `json:"nombre"`
	Address      map[string]any `json:"direccion"`
	RegisteredAt time.Time      `json:"fecha_registro"`
}

// UserProfile is the public view of a user returned by the API.
type UserProfile struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

// Profile strips everything the API must not echo back, most importantly
// the password hash.
func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Email: u.Email, Name: u.Name}
}
