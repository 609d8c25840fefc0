// Package database owns the PostgreSQL connection pool and its lifecycle.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync/atomic"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/robinspt/food-inventory-system/pkg/lifecycle"
)

// ErrNotReady is returned when the connection is requested before Start.
var ErrNotReady = errors.New("database not ready")

// System exposes the shared connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Check(ctx context.Context) error
}

type database struct {
	conn       *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
	started    atomic.Bool
}

// New opens the pool without connecting. When migrations is non-nil and
// auto_migrate is enabled, Start applies them before reporting ready.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:       conn,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start pings the database, applies migrations and registers pool
// shutdown with lc.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)

	if d.migrations != nil && d.cfg.Migrate() {
		version, err := Migrate(d.conn, d.migrations)
		if err != nil {
			return err
		}
		d.logger.Info("migrations applied", "version", version)
	}

	d.started.Store(true)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.started.Store(false)
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database closed")
	})

	return nil
}

// Check reports ErrNotReady before Start or after shutdown, otherwise the
// result of a ping.
func (d *database) Check(ctx context.Context) error {
	if !d.started.Load() {
		return ErrNotReady
	}
	return d.conn.PingContext(ctx)
}
