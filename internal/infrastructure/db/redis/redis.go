// Package redis backs the credential keyspace: refresh sessions and
// single-use email-change tickets, both TTL-bound.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName  = "lifebit-api"
	pingTimeout = 5 * time.Second
)

// Config carries the connection settings for the credential store.
type Config struct {
	Addr string
	DB   int
	// Timeout bounds the startup ping; pingTimeout applies when zero.
	Timeout time.Duration
}

// Connect opens a client named lifebit-api (visible in CLIENT LIST) and
// verifies the server answers a ping before any session or ticket is
// written through it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:       cfg.Addr,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
