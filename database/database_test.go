package database

import (
	"context"
	"testing"
	"time"

	"kucukaslan/nodeapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nothing listens on port 1, so every dial is refused
const unreachableMongoURI = "mongodb://127.0.0.1:1/node_app"

func TestNewMongoRejectsMalformedURI(t *testing.T) {
	_, err := NewMongo(&config.MongoConfig{URI: "postgres://localhost/node_app", ConnectTimeout: time.Second})
	assert.Error(t, err)
}

func TestNewMongoDatabaseName(t *testing.T) {
	db, err := NewMongo(&config.MongoConfig{URI: unreachableMongoURI, ConnectTimeout: time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	assert.Equal(t, "node_app", db.DatabaseName())
}

func TestMongoConnectUnreachable(t *testing.T) {
	db, err := NewMongo(&config.MongoConfig{URI: unreachableMongoURI, ConnectTimeout: 200 * time.Millisecond})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })

	done := db.Connect(context.Background())

	select {
	case err, ok := <-done:
		require.True(t, ok)
		assert.ErrorContains(t, err, "failed to ping MongoDB")
	case <-time.After(5 * time.Second):
		t.Fatal("connect attempt did not report")
	}

	// one-shot: the channel is closed after the single result
	_, ok := <-done
	assert.False(t, ok)
}

func TestMongoHealthCheckNil(t *testing.T) {
	var db *MongoDB
	assert.ErrorContains(t, db.HealthCheck(context.Background()), "not initialized")
	assert.NoError(t, db.Close(context.Background()))
}

func TestNewRedisDisabled(t *testing.T) {
	assert.Nil(t, NewRedis(&config.RedisConfig{Enabled: false}))
}

func TestRedisConnectUnreachable(t *testing.T) {
	r := NewRedis(&config.RedisConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
	})
	require.NotNil(t, r)
	t.Cleanup(func() { _ = r.Close() })

	select {
	case err := <-r.Connect(context.Background()):
		assert.ErrorContains(t, err, "failed to ping Redis")
	case <-time.After(5 * time.Second):
		t.Fatal("connect attempt did not report")
	}
}

func TestRedisNilIsSafe(t *testing.T) {
	var r *Redis
	assert.Error(t, r.HealthCheck(context.Background()))
	assert.NoError(t, r.Close())
}
