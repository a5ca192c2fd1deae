package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Key       string    `bson:"key"`
	Label     string    `bson:"label"`
	Active    bool      `bson:"active"`
	Count     int       `bson:"count"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func TestMemoryStore_AddAndFindOne(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC()
	err := store.Add(ctx, "docs", &testDoc{Key: "a", Label: "first", ExpiresAt: now})
	require.NoError(t, err)

	var got testDoc
	err = store.FindOne(ctx, "docs", "key", "a", &got)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Label)
	assert.WithinDuration(t, now, got.ExpiresAt, time.Millisecond)

	err = store.FindOne(ctx, "docs", "key", "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Query(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "a", Label: "one"}))
	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "a", Label: "two"}))
	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "b", Label: "three"}))

	var got []testDoc
	err := store.Query(ctx, "docs", "key", "a", &got)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	err = store.Query(ctx, "docs", "key", "zzz", &got)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_ConditionalUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "a", Active: false}))

	// conditional update succeeds exactly once
	err := store.Update(ctx, "docs", Filter{"key": "a", "active": false}, map[string]interface{}{"active": true})
	require.NoError(t, err)

	err = store.Update(ctx, "docs", Filter{"key": "a", "active": false}, map[string]interface{}{"active": true})
	assert.ErrorIs(t, err, ErrNotFound)

	var got testDoc
	require.NoError(t, store.FindOne(ctx, "docs", "key", "a", &got))
	assert.True(t, got.Active)
}

func TestMemoryStore_Upsert(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "docs", Filter{"key": "a"}, &testDoc{Key: "a", Label: "v1"}))
	require.NoError(t, store.Upsert(ctx, "docs", Filter{"key": "a"}, &testDoc{Key: "a", Label: "v2"}))

	var got []testDoc
	require.NoError(t, store.Query(ctx, "docs", "key", "a", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].Label)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "a"}))
	require.NoError(t, store.Delete(ctx, "docs", Filter{"key": "a"}))

	var got testDoc
	assert.ErrorIs(t, store.FindOne(ctx, "docs", "key", "a", &got), ErrNotFound)

	// deleting a missing document is not an error
	assert.NoError(t, store.Delete(ctx, "docs", Filter{"key": "a"}))
}

func TestMemoryStore_DeleteManyLessThan(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "old", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "older", ExpiresAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, store.Add(ctx, "docs", &testDoc{Key: "live", ExpiresAt: now.Add(time.Hour)}))

	deleted, err := store.DeleteMany(ctx, "docs", Filter{"expires_at": Lt(now)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var got testDoc
	require.NoError(t, store.FindOne(ctx, "docs", "key", "live", &got))
}
