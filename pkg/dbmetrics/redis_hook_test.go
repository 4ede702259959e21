package dbmetrics

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisHook_RecordsCommands(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	rec := &recorder{}
	client.AddHook(NewRedisHook(rec))

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
	assert.ErrorIs(t, client.Get(ctx, "missing").Err(), redis.Nil)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Contains(t, rec.ops, "redis_set")
	assert.Contains(t, rec.ops, "redis_get")
	assert.Zero(t, rec.fails)
}

func TestRedisHook_SkipsConnectionSetup(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	// каждый новый клиент открывает новое соединение с handshake
	for i := 0; i < 3; i++ {
		client := redis.NewClient(&redis.Options{Addr: mr.Addr(), DB: 1})
		rec := &recorder{}
		client.AddHook(NewRedisHook(rec))

		require.NoError(t, client.Ping(ctx).Err())
		require.NoError(t, client.Close())

		rec.mu.Lock()
		assert.Zero(t, rec.fails)
		assert.Contains(t, rec.ops, "redis_ping")
		assert.NotContains(t, rec.ops, "redis_hello")
		assert.NotContains(t, rec.ops, "redis_pipeline")
		rec.mu.Unlock()
	}
}

func TestRedisHook_PipelineWithDataCommandsIsRecorded(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	rec := &recorder{}
	client.AddHook(NewRedisHook(rec))

	ctx := context.Background()
	_, err := client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, "booked", "09:00")
		pipe.SMembers(ctx, "booked")
		return nil
	})
	require.NoError(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Contains(t, rec.ops, "redis_pipeline")
	assert.Zero(t, rec.fails)
}
