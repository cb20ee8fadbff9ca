package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

type testPayload struct {
	Value int `json:"value"`
}

func TestPutGetVersioning(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	record, err := models.NewRecord("portfolio", "default", testPayload{Value: 1})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, record))
	assert.Equal(t, 1, record.Version)

	record, err = models.NewRecord("portfolio", "default", testPayload{Value: 2})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, record))
	assert.Equal(t, 2, record.Version)

	got, err := store.Get(ctx, "portfolio", "default")
	require.NoError(t, err)

	var payload testPayload
	require.NoError(t, got.Decode(&payload))
	assert.Equal(t, 2, payload.Value)
}

func TestGetDelete_NotFound(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "portfolio", "missing")
	assert.ErrorIs(t, err, interfaces.ErrRecordNotFound)

	err = store.Delete(ctx, "portfolio", "missing")
	assert.ErrorIs(t, err, interfaces.ErrRecordNotFound)
}

func TestList_InsertionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, key := range []string{"z", "m", "a"} {
		record, err := models.NewRecord("alert", key, testPayload{})
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, record))
	}

	records, err := store.List(ctx, "alert")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "z", records[0].Key)
	assert.Equal(t, "m", records[1].Key)
	assert.Equal(t, "a", records[2].Key)
}

func TestList_UpdateKeepsOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, key := range []string{"first", "second"} {
		record, err := models.NewRecord("alert", key, testPayload{})
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, record))
	}

	// Updating the first record must not move it to the back
	record, err := models.NewRecord("alert", "first", testPayload{Value: 9})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, record))

	records, err := store.List(ctx, "alert")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Key)
	assert.Equal(t, 2, records[0].Version)
}
