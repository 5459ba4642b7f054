package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/cmdline/pkg/adapters/redis"
	"github.com/aretw0/cmdline/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Contract(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client)
	ports.RunHistoryStoreContract(t, store, func(name string) string { return name })
}

func TestRedisStore_KeyLayout(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := redis.New(mr.Addr(), "", 0, redis.WithPrefix("test:"))
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), "/tmp/history.txt", []string{"help", "mask on"}))

	list, err := mr.List("test:/tmp/history.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"help", "mask on"}, list)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "history", []string{"help"}))

	loaded, err := store.Load(ctx, "history")
	require.NoError(t, err)
	assert.Equal(t, []string{"help"}, loaded)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "history")
	assert.ErrorIs(t, err, ports.ErrHistoryNotFound)
}
