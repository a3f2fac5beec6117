package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// DefaultDatabase is used when the connection URL names no database.
const DefaultDatabase = "test"

// New creates a new mongo client and verifies it with a ping.
//
// Connection attempts are repeated cfg.RetryAttempts times with
// cfg.RetryInterval between them. A malformed URL fails immediately.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if _, err := connstring.ParseAndValidate(cfg.ConnectionURL); err != nil {
		return nil, errors.Join(ErrInvalidConnectionURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for attempt := range attempts {
		client, err := mongo.Connect(clientOptions(cfg))
		if err != nil {
			return nil, errors.Join(ErrInvalidConnectionURL, err)
		}

		if lastErr = ping(ctx, client, cfg.ConnectTimeout); lastErr == nil {
			return client, nil
		}
		_ = client.Disconnect(context.WithoutCancel(ctx))

		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

// Open connects like New and selects a database. An empty database name
// falls back to the one named in the connection URL.
func Open(ctx context.Context, cfg Config, database string) (*mongo.Client, *mongo.Database, error) {
	if database == "" {
		name, err := DatabaseName(cfg.ConnectionURL)
		if err != nil {
			return nil, nil, err
		}
		database = name
	}

	client, err := New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Database(database), nil
}

// DatabaseName returns the database named in the path of a mongodb:// or
// mongodb+srv:// URL, or DefaultDatabase when there is none.
func DatabaseName(url string) (string, error) {
	if url == "" {
		return "", ErrEmptyConnectionURL
	}
	cs, err := connstring.ParseAndValidate(url)
	if err != nil {
		return "", errors.Join(ErrInvalidConnectionURL, err)
	}
	if cs.Database == "" {
		return DefaultDatabase, nil
	}
	return cs.Database, nil
}

func clientOptions(cfg Config) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}
	return opts
}

func ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return client.Ping(ctx, readpref.Primary())
}
