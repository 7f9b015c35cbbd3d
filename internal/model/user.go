package model

import (
	"context"
	"strconv"
	"time"
)

// UserStore defines persistence operations for users. Implementations exist
// for PostgreSQL (numeric identifiers) and bbolt (email-keyed, no numeric
// identifiers).
type UserStore interface {
	// GetByEmail returns the user stored under the normalized email.
	// Returns ErrNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByID returns the user with the given numeric identifier.
	// Backends without surrogate identifiers return ErrUnsupported.
	GetByID(ctx context.Context, id int64) (User, error)

	// Create inserts a new user and returns the stored record.
	// Returns ErrConflict when the identity key is already taken.
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with its password credential.
// PasswordHash is an opaque bcrypt hash and must never be written to logs
// or serialized into responses.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Subject returns the token subject for the user: the decimal identifier
// when the backend assigns one, otherwise the email.
func (u User) Subject() string {
	if u.ID != 0 {
		return strconv.FormatInt(u.ID, 10)
	}
	return u.Email
}
