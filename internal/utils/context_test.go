package utils

import (
	"context"
	"testing"

	"github.com/dmarrero/jobtrack/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionFromContext_Present(t *testing.T) {
	want := models.Session{SessionID: "sid", UserID: 42, Username: "alice123"}
	ctx := context.WithValue(context.Background(), SessionCtxKey, want)

	got, ok := GetSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetSessionFromContext_Absent(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-session")

	_, ok := GetSessionFromContext(ctx)
	assert.False(t, ok)
}
