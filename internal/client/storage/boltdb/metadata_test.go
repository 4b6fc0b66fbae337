package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ecoestate/internal/models"
)

func TestLastRefresh_RoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	require.NoError(t, store.SaveLastRefresh(ctx, models.KindProperties, at))

	got, err := store.GetLastRefresh(ctx, models.KindProperties)
	require.NoError(t, err)
	assert.True(t, got.Equal(at))
}

func TestLastRefresh_NeverRefreshed(t *testing.T) {
	store := createTestStorage(t)

	got, err := store.GetLastRefresh(context.Background(), models.KindRegions)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestLastRefresh_PerKind(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	t1 := time.Now().Add(-time.Hour).Truncate(time.Millisecond)
	t2 := time.Now().Truncate(time.Millisecond)
	require.NoError(t, store.SaveLastRefresh(ctx, models.KindProperties, t1))
	require.NoError(t, store.SaveLastRefresh(ctx, models.KindProjects, t2))

	got1, err := store.GetLastRefresh(ctx, models.KindProperties)
	require.NoError(t, err)
	got2, err := store.GetLastRefresh(ctx, models.KindProjects)
	require.NoError(t, err)

	assert.True(t, got1.Equal(t1))
	assert.True(t, got2.Equal(t2))
}
