package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/mkazantsev/authgate/internal/apperr"
	"github.com/mkazantsev/authgate/internal/logger"
	"github.com/mkazantsev/authgate/internal/model"
)

// Identity resolves verified token subjects back to user records.
type Identity struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewIdentity creates a new Identity service.
func NewIdentity(store model.UserStore, logger *logger.Logger) *Identity {
	return &Identity{store: store, logger: logger}
}

// Resolve looks up the user behind a token subject. Decimal subjects are
// numeric identifiers (relational backend), anything else is an email.
// A subject that no longer resolves is reported as not found, which the
// translator folds into an unauthorized response.
func (s *Identity) Resolve(ctx context.Context, subject string) (model.User, error) {
	var (
		user model.User
		err  error
	)

	if id, parseErr := strconv.ParseInt(subject, 10, 64); parseErr == nil {
		user, err = s.store.GetByID(ctx, id)
	} else {
		user, err = s.store.GetByEmail(ctx, subject)
	}

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrUnsupported) {
			s.logger.Info("Identity service: subject did not resolve", "subject", subject)
			return model.User{}, apperr.NewNotFound("identity not found")
		}
		s.logger.Error("Identity service: failed to resolve subject", "subject", subject, "error", err.Error())
		return model.User{}, apperr.NewInternal(apperr.KindStore, err)
	}

	return user, nil
}
