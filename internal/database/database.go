package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mtlprog/goodwill/internal/config"
	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Status reports the outcome of the connection attempt.
type Status string

const (
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
	StatusFailed     Status = "failed"
)

// DB is the process-wide MongoDB handle. The connection is established in the
// background; Ready is closed once the attempt has either succeeded or failed.
type DB struct {
	name   string
	client *mongo.Client
	err    error
	ready  chan struct{}
}

// Open starts connecting to uri and returns immediately. The attempt, including
// the initial ping, is bounded by timeout. There are no retries: a failed
// attempt leaves the handle failed for the lifetime of the process.
func Open(ctx context.Context, uri string, timeout time.Duration) *DB {
	db := &DB{
		name:  DatabaseName(uri),
		ready: make(chan struct{}),
	}

	go db.connect(ctx, uri, timeout)

	return db
}

// Connect opens the database and waits for the attempt to finish.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*DB, error) {
	db := Open(ctx, uri, timeout)
	if _, err := db.Wait(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *DB) connect(ctx context.Context, uri string, timeout time.Duration) {
	defer close(db.ready)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		db.fail(fmt.Errorf("connect to database: %w", err))
		return
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if derr := client.Disconnect(context.Background()); derr != nil {
			slog.Warn("failed to disconnect after ping failure", "error", derr)
		}
		db.fail(fmt.Errorf("ping database: %w", err))
		return
	}

	db.client = client
	metrics.DatabaseUp.Set(1)
	slog.Info("database connected", "database", db.name)
}

func (db *DB) fail(err error) {
	db.err = err
	metrics.DatabaseUp.Set(0)
	slog.Error("database connection failed", "database", db.name, "error", err)
}

// Name returns the database name selected by the connection URI.
func (db *DB) Name() string {
	return db.name
}

// Ready returns a channel that is closed once the connection attempt has finished.
func (db *DB) Ready() <-chan struct{} {
	return db.ready
}

// Status reports the connection state without blocking.
func (db *DB) Status() Status {
	select {
	case <-db.ready:
		if db.err != nil {
			return StatusFailed
		}
		return StatusConnected
	default:
		return StatusConnecting
	}
}

// Err returns the connection error, or nil while connecting or once connected.
func (db *DB) Err() error {
	select {
	case <-db.ready:
		return db.err
	default:
		return nil
	}
}

// Wait blocks until the connection attempt has finished or ctx is done and
// returns the database. Any failure wraps domain.ErrDatabaseUnavailable.
func (db *DB) Wait(ctx context.Context) (*mongo.Database, error) {
	select {
	case <-db.ready:
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseUnavailable, ctx.Err())
	}

	if db.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseUnavailable, db.err)
	}

	return db.client.Database(db.name), nil
}

// Ping checks that the database is reachable right now.
func (db *DB) Ping(ctx context.Context) error {
	if _, err := db.Wait(ctx); err != nil {
		return err
	}
	if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: ping database: %w", domain.ErrDatabaseUnavailable, err)
	}
	return nil
}

// Close waits for the connection attempt and disconnects the client if it succeeded.
func (db *DB) Close(ctx context.Context) error {
	select {
	case <-db.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	if db.client == nil {
		return nil
	}
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect database: %w", err)
	}

	slog.Info("database connection closed")
	return nil
}

// DatabaseName returns the database named in the URI path, falling back to
// config.DefaultDatabaseName when the URI has none or cannot be parsed.
func DatabaseName(uri string) string {
	cs, err := connstring.Parse(uri)
	if err != nil || cs.Database == "" {
		return config.DefaultDatabaseName
	}
	return cs.Database
}
