package model

import "context"

// ContextManager moves the authenticated subject in and out of a request
// context.
type ContextManager interface {
	SetSubjectToContext(ctx context.Context, subject string) context.Context
	GetSubjectFromContext(ctx context.Context) (string, bool)
}
