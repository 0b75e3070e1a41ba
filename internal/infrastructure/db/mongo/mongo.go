// Package mongo holds the document persistence layer: connection setup and
// the repositories for the users, residents, resources and condominiums
// collections.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	appName        = "lifebit-api"
	connectTimeout = 10 * time.Second
)

// Config carries the connection settings for the LifeBit database.
type Config struct {
	URI      string
	Database string
	// Timeout bounds the initial connect and ping; connectTimeout applies
	// when zero.
	Timeout time.Duration
}

// Connect opens the client, verifies the deployment answers a ping and
// selects the configured database. The client identifies itself as
// lifebit-api so slow queries can be attributed in server logs.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
