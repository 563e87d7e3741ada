package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIdentityFromContext_Present(t *testing.T) {
	user := models.User{ID: 42, EmailAddress: "jo@x.com"}
	ctx := context.WithValue(context.Background(), IdentityCtxKey, user)

	got, ok := GetIdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "not-a-user")
	_, ok := GetIdentityFromContext(ctx)
	assert.False(t, ok)
}
