// Package bolt persists users in an embedded bbolt database keyed by
// email. The backend assigns no numeric identifiers: the email is the sole
// identity key and becomes the token subject.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/mkazantsev/authgate/internal/model"
)

const usersBucket = "users"

var _ model.UserStore = (*UserRepository)(nil)

// userRecord is the stored form of a user. The hash travels through the
// store opaque; it is never logged.
type userRecord struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRepository implements model.UserStore over bbolt.
type UserRepository struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the bbolt database at path.
func Open(path string) (*UserRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(usersBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create users bucket: %w", err)
	}

	return &UserRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *UserRepository) Close() error {
	return r.db.Close()
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	var rec userRecord
	err := r.db.View(func(tx *bbolt.Tx) error {
		payload := tx.Bucket([]byte(usersBucket)).Get([]byte(email))
		if payload == nil {
			return model.ErrNotFound
		}
		if err := json.Unmarshal(payload, &rec); err != nil {
			return fmt.Errorf("failed to unmarshal user: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}

	return rec.toModel(), nil
}

// GetByID is not available: this backend has no surrogate identifiers.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	return model.User{}, model.ErrUnsupported
}

// Create inserts the user unless the email key is taken. The existence
// check and the put run inside one write transaction; bbolt serializes
// writers, so concurrent registrations of the same email cannot both win.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	rec := userRecord{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		CreatedAt:    user.CreatedAt,
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to marshal user: %w", err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(usersBucket))
		if bucket.Get([]byte(user.Email)) != nil {
			return model.ErrConflict
		}
		return bucket.Put([]byte(user.Email), payload)
	})
	if err != nil {
		return model.User{}, err
	}

	return rec.toModel(), nil
}

func (rec userRecord) toModel() model.User {
	return model.User{
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Name:         rec.Name,
		CreatedAt:    rec.CreatedAt,
	}
}
