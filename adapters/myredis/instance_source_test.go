package myredis

import (
	"context"
	"testing"
	"time"

	"mymultichain/service"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "redis://localhost:6379"
const testPrefix = "mymultichain_test_instance"

func setupTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("redis is not reachable at %s: %v", testRedisAddr, err)
	}

	purge := func() {
		keys, _ := client.Keys(context.Background(), testPrefix+":*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	}
	purge()
	t.Cleanup(func() {
		purge()
		client.Close()
	})
	return client
}

func TestNewInstanceSource_Panics(t *testing.T) {
	client, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	defer client.Close()

	assert.PanicsWithValue(t, "myredis.instance_source.go: client is required", func() {
		NewInstanceSource(nil, testPrefix)
	})
	assert.PanicsWithValue(t, "myredis.instance_source.go: prefix is required", func() {
		NewInstanceSource(client, "")
	})
}

func TestInstanceSource_LoadInstances(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	source := NewInstanceSource(client, testPrefix)

	t.Run("empty store returns entity not found", func(t *testing.T) {
		items, err := source.LoadInstances(ctx)
		require.Error(t, err)
		assert.True(t, service.IsEntityNotFoundError(err))
		assert.Nil(t, items)
	})

	t.Run("returns all records sorted by key", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testPrefix+":b", `{"id":"gnosis","title":"Gnosis","url":"https://gnosis.local/"}`, 0).Err())
		require.NoError(t, client.Set(ctx, testPrefix+":a", `{"id":"eth","title":"Ethereum","url":"https://eth.local"}`, 0).Err())
		require.NoError(t, client.Set(ctx, testPrefix+":optimism", `{"url":"https://op.local"}`, 0).Err())

		items, err := source.LoadInstances(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "eth", items[0].ID)
		assert.Equal(t, "Ethereum", items[0].Title)
		assert.Equal(t, "https://eth.local", items[0].URL.String())
		assert.Equal(t, "gnosis", items[1].ID)
		assert.Equal(t, "https://gnosis.local/", items[1].URL.String())
		assert.Equal(t, "optimism", items[2].ID)
	})

	t.Run("invalid JSON yields bad parameter", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testPrefix+":broken", "invalid json", 0).Err())
		defer client.Del(ctx, testPrefix+":broken")

		items, err := source.LoadInstances(ctx)
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
		assert.Nil(t, items)
	})

	t.Run("invalid URL yields bad parameter", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, testPrefix+":ftp", `{"id":"ftp","url":"ftp://files.local"}`, 0).Err())
		defer client.Del(ctx, testPrefix+":ftp")

		_, err := source.LoadInstances(ctx)
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
		assert.Contains(t, err.Error(), "url scheme must be http|https")
	})
}

func TestInstanceSource_LoadInstances_ClosedClient(t *testing.T) {
	closed, err := NewRedisUniversalClient(testRedisAddr)
	require.NoError(t, err)
	require.NoError(t, closed.Close())

	_, err = NewInstanceSource(closed, testPrefix).LoadInstances(context.Background())
	require.Error(t, err)
	assert.True(t, service.IsInternalServerError(err))
}
