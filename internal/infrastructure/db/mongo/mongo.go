// Package mongo implements the document-store repositories for users,
// courses, quizzes and activity events.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository call; connection setup uses its own
// deadline below.
const (
	defaultTimeout = 10 * time.Second
	connectTimeout = 10 * time.Second
)

// Config carries the connection settings for the MongoDB deployment.
type Config struct {
	URI      string
	Database string
}

// Connect dials the deployment, confirms it answers a ping and returns the
// client together with the application database handle.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
