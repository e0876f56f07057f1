package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := s.Read(ctx, KeyDeliveryFees)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Write(ctx, KeyDeliveryFees, []byte(`[{"id":"1"}]`)))

	value, found, err := s.Read(ctx, KeyDeliveryFees)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))
}

func TestFileStore_WriteReplaces(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeyCustomers, []byte(`"old"`)))
	require.NoError(t, s.Write(ctx, KeyCustomers, []byte(`"new"`)))

	value, found, err := s.Read(ctx, KeyCustomers)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"new"`, string(value))
}

func TestFileStore_Delete(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, KeyOrderHistory, []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, KeyOrderHistory))

	_, found, err := s.Read(ctx, KeyOrderHistory)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, KeyOrderHistory))
}
