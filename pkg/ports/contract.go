package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHistoryStoreContract runs a suite of tests to verify that a HistoryStore
// implementation adheres to the interface contract. keyFor maps a logical
// name to a key valid for the store (a file path, a Redis key).
func RunHistoryStoreContract(t *testing.T, store HistoryStore, keyFor func(name string) string) {
	ctx := context.Background()
	suffix := time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		key := keyFor("save-load-" + suffix)
		entries := []string{"help", "sample-ctrl on", "historylen 10"}

		require.NoError(t, store.Save(ctx, key, entries), "Save should not return error")

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, entries, loaded)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		key := keyFor("replace-" + suffix)
		require.NoError(t, store.Save(ctx, key, []string{"a", "b", "c"}))
		require.NoError(t, store.Save(ctx, key, []string{"d"}))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []string{"d"}, loaded)
	})

	t.Run("Save Empty", func(t *testing.T) {
		key := keyFor("empty-" + suffix)
		require.NoError(t, store.Save(ctx, key, []string{"a"}))
		require.NoError(t, store.Save(ctx, key, nil))

		loaded, err := store.Load(ctx, key)
		if err != nil {
			assert.ErrorIs(t, err, ErrHistoryNotFound)
			return
		}
		assert.Empty(t, loaded)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, keyFor("non-existent-"+suffix))
		assert.ErrorIs(t, err, ErrHistoryNotFound)
	})
}
