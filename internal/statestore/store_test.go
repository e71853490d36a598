package statestore

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func stores(t *testing.T) map[string]Store {
	_, client := setupTestRedis(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client, "test:", time.Hour),
	}
}

func TestStoreLifecycle(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			v, err := store.Get(ctx, "cart:a")
			require.NoError(t, err)
			assert.Nil(t, v)

			err = store.Update(ctx, "cart:a", func(current []byte) ([]byte, error) {
				assert.Nil(t, current)
				return []byte("one"), nil
			})
			require.NoError(t, err)

			err = store.Update(ctx, "cart:a", func(current []byte) ([]byte, error) {
				assert.Equal(t, "one", string(current))
				return append(current, "+two"...), nil
			})
			require.NoError(t, err)

			v, err = store.Get(ctx, "cart:a")
			require.NoError(t, err)
			assert.Equal(t, "one+two", string(v))

			require.NoError(t, store.Delete(ctx, "cart:a"))
			v, err = store.Get(ctx, "cart:a")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestUpdateReturningNilDeletes(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte("x"), nil }))
			require.NoError(t, store.Update(ctx, "k", func([]byte) ([]byte, error) { return nil, nil }))

			v, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestUpdateErrorLeavesValue(t *testing.T) {
	boom := errors.New("boom")
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte("keep"), nil }))

			err := store.Update(ctx, "k", func([]byte) ([]byte, error) { return []byte("lost"), boom })
			assert.ErrorIs(t, err, boom)

			v, err := store.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "keep", string(v))
		})
	}
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const writers = 8

			var wg sync.WaitGroup
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := store.Update(ctx, "counter", func(current []byte) ([]byte, error) {
						n := 0
						if current != nil {
							n, _ = strconv.Atoi(string(current))
						}
						return []byte(strconv.Itoa(n + 1)), nil
					})
					assert.NoError(t, err)
				}()
			}
			wg.Wait()

			v, err := store.Get(ctx, "counter")
			require.NoError(t, err)
			assert.Equal(t, strconv.Itoa(writers), string(v))
		})
	}
}

func TestRedisStoreAppliesPrefixAndTTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "storefront:", 30*time.Minute)

	require.NoError(t, store.Update(context.Background(), "cart:abc", func([]byte) ([]byte, error) {
		return []byte("{}"), nil
	}))

	assert.True(t, mr.Exists("storefront:cart:abc"))
	assert.Equal(t, 30*time.Minute, mr.TTL("storefront:cart:abc"))
}

func TestRedisStoreNegativeTTLMeansNoExpiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, "storefront:", -time.Second)

	require.NoError(t, store.Update(context.Background(), "cart:abc", func([]byte) ([]byte, error) {
		return []byte("{}"), nil
	}))

	assert.True(t, mr.Exists("storefront:cart:abc"))
	assert.Equal(t, time.Duration(0), mr.TTL("storefront:cart:abc"))
}
