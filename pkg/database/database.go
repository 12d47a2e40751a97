// Package database opens the PostgreSQL-backed ent client.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/pkg/logger"
	_ "github.com/lib/pq"
)

// PoolConfig sizes the connection pool. Zero values keep the defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPool suits one API replica plus its cron jobs.
var DefaultPool = PoolConfig{
	MaxOpenConns:    20,
	MaxIdleConns:    5,
	ConnMaxLifetime: 30 * time.Minute,
}

// Client holds the ent client and the pool under it.
type Client struct {
	Ent *ent.Client
	db  *sql.DB
}

// NewClient connects to databaseURL, verifies the connection and applies the
// schema migrations.
func NewClient(ctx context.Context, databaseURL string, pool PoolConfig, log logger.Logger) (*Client, error) {
	db, err := sql.Open(dialect.Postgres, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}
	if pool.MaxOpenConns <= 0 {
		pool.MaxOpenConns = DefaultPool.MaxOpenConns
	}
	if pool.MaxIdleConns <= 0 {
		pool.MaxIdleConns = DefaultPool.MaxIdleConns
	}
	if pool.ConnMaxLifetime <= 0 {
		pool.ConnMaxLifetime = DefaultPool.ConnMaxLifetime
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres unreachable: %w", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	if err := client.Schema.Create(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	log.Info("✅ Database connected and migrations applied",
		"max_open_conns", pool.MaxOpenConns,
		"max_idle_conns", pool.MaxIdleConns)
	return &Client{Ent: client, db: db}, nil
}

// Close closes the ent client and its pool.
func (c *Client) Close() error {
	return c.Ent.Close()
}

// Ping checks that PostgreSQL answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
