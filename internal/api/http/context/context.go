// Package context carries the authenticated subject through a single
// request's context. The value lives only for the lifetime of that request.
package context

import (
	"context"
)

// subjectKey is the private context key for the authenticated subject.
type subjectKey struct{}

// Manager implements model.ContextManager for HTTP requests.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSubjectToContext returns a child context carrying the subject.
func (m *Manager) SetSubjectToContext(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// GetSubjectFromContext returns the subject stored by the auth gate and
// whether one was present.
func (m *Manager) GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}
