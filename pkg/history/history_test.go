package history_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/cmdline/pkg/adapters/memory"
	"github.com/aretw0/cmdline/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_Add(t *testing.T) {
	h := history.New(memory.NewStore())

	h.Add("help")
	h.Add("help")
	h.Add("")
	h.Add("mask on")

	assert.Equal(t, []string{"help", "mask on"}, h.Entries())
}

func TestHistory_DropsOldest(t *testing.T) {
	h := history.New(memory.NewStore())
	require.True(t, h.SetMaxLen(3))

	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprintf("cmd%d", i))
	}
	assert.Equal(t, []string{"cmd2", "cmd3", "cmd4"}, h.Entries())
}

func TestHistory_AtNewestFirst(t *testing.T) {
	h := history.New(memory.NewStore())
	h.Add("one")
	h.Add("two")
	h.Add("three")

	require.Equal(t, 3, h.Len())
	assert.Equal(t, "three", h.At(0))
	assert.Equal(t, "one", h.At(2))
	assert.Panics(t, func() { h.At(3) })
}

func TestHistory_SetMaxLen(t *testing.T) {
	h := history.New(memory.NewStore())
	for i := 0; i < 5; i++ {
		h.Add(fmt.Sprintf("cmd%d", i))
	}

	assert.False(t, h.SetMaxLen(0))
	assert.Equal(t, history.DefaultMaxLen, h.MaxLen())

	assert.True(t, h.SetMaxLen(2))
	assert.Equal(t, []string{"cmd3", "cmd4"}, h.Entries())
}

func TestHistory_LoadSave(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	h := history.New(store)
	h.Add("help")
	h.Add("sample-status")
	require.NoError(t, h.Save(ctx, "history"))

	other := history.New(store)
	require.NoError(t, other.Load(ctx, "history"))
	assert.Equal(t, []string{"help", "sample-status"}, other.Entries())

	// Missing keys load as empty.
	require.NoError(t, other.Load(ctx, "missing"))
	assert.Empty(t, other.Entries())
}

type failingStore struct{}

func (failingStore) Load(ctx context.Context, key string) ([]string, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Save(ctx context.Context, key string, entries []string) error {
	return errors.New("disk on fire")
}

func TestHistory_StoreErrors(t *testing.T) {
	h := history.New(failingStore{})
	assert.Error(t, h.Load(context.Background(), "k"))
	assert.Error(t, h.Save(context.Background(), "k"))
}
