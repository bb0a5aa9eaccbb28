package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/comparepco/comparepco/internal/pkg/models"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetNX(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "booking:reminder:b-1", "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "booking:reminder:b-1", "1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)

	ok, err = client.SetNX(ctx, "booking:reminder:b-1", "1", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisClient_Lock(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	ok, err := client.AcquireLock(ctx, "scheduler:lock", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.AcquireLock(ctx, "scheduler:lock", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	// a foreign token must not release the lease
	require.NoError(t, client.ReleaseLock(ctx, "scheduler:lock", "owner-b"))
	assert.True(t, mr.Exists("scheduler:lock"))

	require.NoError(t, client.ReleaseLock(ctx, "scheduler:lock", "owner-a"))
	assert.False(t, mr.Exists("scheduler:lock"))
}

func TestRedisClient_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectGet("test:key").SetVal("test-value")
	val, err := client.Get(ctx, "test:key")
	assert.NoError(t, err)
	assert.Equal(t, "test-value", val)

	mock.ExpectGet("missing").RedisNil()
	_, err = client.Get(ctx, "missing")
	assert.Equal(t, redis.Nil, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectDel("test:key").SetVal(1)
	assert.NoError(t, client.Delete(ctx, "test:key"))

	mock.ExpectDel("test:key").SetErr(errors.New("connection refused"))
	assert.Error(t, client.Delete(ctx, "test:key"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Ping(t *testing.T) {
	mr, client := setupMiniredis(t)
	assert.NoError(t, client.Ping(context.Background()))

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}
