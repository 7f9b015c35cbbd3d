package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_Roundtrip(t *testing.T) {
	m := NewManager()

	ctx := m.SetSubjectToContext(context.Background(), "42")

	subject, ok := m.GetSubjectFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", subject)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	subject, ok := m.GetSubjectFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, subject)
}

func TestManager_EmptySubject(t *testing.T) {
	m := NewManager()

	ctx := m.SetSubjectToContext(context.Background(), "")
	_, ok := m.GetSubjectFromContext(ctx)
	assert.False(t, ok)
}
