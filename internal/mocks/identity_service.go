package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mkazantsev/authgate/internal/model"
)

// IdentityService is a testify mock for handler.IdentityService.
type IdentityService struct {
	mock.Mock
}

func (m *IdentityService) Resolve(ctx context.Context, subject string) (model.User, error) {
	args := m.Called(ctx, subject)
	return args.Get(0).(model.User), args.Error(1)
}
