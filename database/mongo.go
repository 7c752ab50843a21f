package database

import (
	"context"
	"fmt"
	"time"

	"kucukaslan/nodeapp/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoDB holds the client and the application database handle.
// The handle is never queried; it only backs the connectivity check.
type MongoDB struct {
	client         *mongo.Client
	database       *mongo.Database
	connectTimeout time.Duration
}

// NewMongo builds a client for the configured URI. No network I/O happens here,
// so an error means the URI or options are malformed.
func NewMongo(cfg *config.MongoConfig) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	return &MongoDB{
		client:         client,
		database:       client.Database(cfg.DatabaseName()),
		connectTimeout: cfg.ConnectTimeout,
	}, nil
}

// Connect pings the server in the background. The returned channel delivers
// exactly one value (nil on success) and is then closed.
func (m *MongoDB) Connect(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(ctx, m.connectTimeout)
		defer cancel()
		done <- m.ping(ctx)
	}()
	return done
}

// HealthCheck verifies that the MongoDB connection is alive
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m == nil || m.client == nil {
		return fmt.Errorf("MongoDB connection is not initialized")
	}
	return m.ping(ctx)
}

// DatabaseName returns the name of the application database
func (m *MongoDB) DatabaseName() string {
	return m.database.Name()
}

// Close disconnects the MongoDB client
func (m *MongoDB) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close MongoDB connection: %w", err)
	}
	return nil
}

func (m *MongoDB) ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}
