// Package pgtest starts a disposable PostgreSQL container with the shop schema for
// integration tests.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/migrations"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table of the schema in truncation order.
const Tables = "order_items, orders, deliveries, items, members"

// Database is a running container with an open, migrated connection.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB

	connStr string
}

// Start runs postgres:15-alpine, applies the SQL migrations the migrate command ships
// and opens the database through postgres.Open.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = runMigrations(connStr); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := postgres.Open(connStr, nil)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db, connStr: connStr}, nil
}

func runMigrations(connStr string) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	return migrations.Up(db)
}

// CreateDatabase creates an empty database in the same container and opens it
// through postgres.Open without any schema.
func (d *Database) CreateDatabase(name string) (*gorm.DB, error) {
	if err := d.DB.Exec("CREATE DATABASE " + name).Error; err != nil {
		return nil, err
	}

	u, err := url.Parse(d.connStr)
	if err != nil {
		return nil, err
	}
	u.Path = "/" + name

	return postgres.Open(u.String(), nil)
}

// Truncate empties every table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " CASCADE").Error
}

// Terminate stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
