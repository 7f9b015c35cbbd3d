package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
)

const (
	minEmailLength    = 6
	minPasswordLength = 6
)

// externalInvalidCredentials is the single body message returned for both
// unknown-email and wrong-password logins, so responses cannot be used to
// probe which emails are registered. The distinction is kept in logs only.
const externalInvalidCredentials = "invalid email or password"

// Auth implements registration and login. It owns no state: passwords are
// hashed and discarded, tokens are minted and returned.
type Auth struct {
	store  model.UserStore
	hasher model.PasswordHasher
	tokens model.TokenManager
	logger *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(store model.UserStore, hasher model.PasswordHasher, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// NormalizeEmail lowercases and trims an email so that lookups and inserts
// agree on one identity key per address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateCredentials enforces the length preconditions before any store
// or hashing work happens.
func validateCredentials(email, password string) *apperr.Error {
	if len(email) < minEmailLength {
		return apperr.NewInvalidInput("email must be at least 6 characters")
	}
	if len(password) < minPasswordLength {
		return apperr.NewInvalidInput("password must be at least 6 characters")
	}
	return nil
}

// Register creates a user with a hashed credential and returns a session
// token for the new identity. Duplicate emails fail with a conflict; a
// store failure after hashing leaves no side effect.
func (a *Auth) Register(ctx context.Context, email, password, name string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: starting registration", "email", email)

	_, err := a.store.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return "", apperr.NewConflict("email already registered")
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to check email", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindStore, err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindHash, err)
	}

	user := model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now(),
	}

	saved, err := a.store.Create(ctx, user)
	if err != nil {
		// The store-level uniqueness check is what closes the race between
		// two concurrent registrations of the same email.
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: concurrent registration lost", "email", email)
			return "", apperr.NewConflict("email already registered")
		}
		a.logger.Error("Auth service: failed to create user", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindStore, err)
	}

	tokenString, err := a.tokens.Generate(saved.Subject())
	if err != nil {
		a.logger.Error("Auth service: failed to issue token", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindToken, err)
	}

	a.logger.Info("Auth service: registration completed", "email", email)

	return tokenString, nil
}

// Login verifies the credential and returns a session token. Unknown email
// and wrong password produce the same external result.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: starting login", "email", email)

	user, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: identity not found", "email", email)
			return "", apperr.NewUnauthorized(externalInvalidCredentials)
		}
		a.logger.Error("Auth service: failed to get user", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindStore, err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindHash, err)
	}
	if !ok {
		a.logger.Info("Auth service: credential mismatch", "email", email)
		return "", apperr.NewUnauthorized(externalInvalidCredentials)
	}

	tokenString, err := a.tokens.Generate(user.Subject())
	if err != nil {
		a.logger.Error("Auth service: failed to issue token", "email", email, "error", err.Error())
		return "", apperr.NewInternal(apperr.KindToken, err)
	}

	a.logger.Info("Auth service: login completed", "email", email)

	return tokenString, nil
}
