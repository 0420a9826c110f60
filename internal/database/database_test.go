package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

func testConfig(backend string) *config.Config {
	return &config.Config{
		Environment:  config.Test,
		StoreBackend: backend,
		AutoMigrate:  true,
	}
}

func TestOpenStore_Memory(t *testing.T) {
	ctx := context.Background()
	st, err := OpenStore(ctx, testConfig(config.BackendMemory), zap.NewNop())
	require.NoError(t, err)
	defer st.Close(ctx)

	assert.Equal(t, "memory", st.Name())
	assert.NoError(t, st.Ping(ctx))
}

func TestOpenStore_SQLiteMigratesSchema(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.BackendSQLite)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "forkcast.db")

	st, err := OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer st.Close(ctx)

	assert.Equal(t, "sqlite", st.Name())

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  "alice",
		Password:  "hash",
		CreatedAt: time.Now().UTC(),
	}
	_, err = st.Users().InsertOne(ctx, user)
	require.NoError(t, err)

	count, err := st.Users().Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = st.Users().InsertOne(ctx, &models.User{ID: uuid.NewString(), Username: "alice", Password: "x", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	_, err := OpenStore(context.Background(), testConfig("cassandra"), zap.NewNop())
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestRunMigrations_NoSchema(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.BackendMemory)
	cfg.AutoMigrate = false

	st, err := OpenStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NoError(t, RunMigrations(ctx, st, zap.NewNop()))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{RedisHost: mr.Host(), RedisPort: mr.Port()}
	require.True(t, RedisConfigured(cfg))

	client, err := NewRedisClient(cfg, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisClient_URL(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{RedisURL: "redis://" + mr.Addr() + "/0"}
	client, err := NewRedisClient(cfg, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	cfg := &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"}
	_, err := NewRedisClient(cfg, zap.NewNop())
	assert.Error(t, err)
	assert.False(t, RedisConfigured(&config.Config{}))
}
