// Package reportdb stores problem reports about queries that could not be converted.
package reportdb

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"easyconvert.app/internal/appconf"
	"easyconvert.app/internal/logging"
)

//go:embed schema.sql
var ddl string

// Client is the main entry point for the library
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// NewClient opens the database and creates the schema. A nil logger discards store logs.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.Discard()
	}

	db, err := createDB(config)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "report_db_opened",
		slog.String("path", config.DBPath),
		slog.String("component", "reportdb"))

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// createDB opens the SQLite database and applies the schema.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && !config.inMemory() {
		return nil, errors.New("test database must use in-memory storage")
	}

	db, err := sql.Open("sqlite", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Every connection to ":memory:" gets its own database, so the pool is pinned to one.
	if config.inMemory() {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return db, nil
}

// TableCounts returns the number of rows in every table.
func (c *Client) TableCounts(ctx context.Context) (map[string]int, error) {
	tables, err := c.tableNames(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var count int
		// Table names come from sqlite_master, not from user input.
		if err := c.DB.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %q", table)).Scan(&count); err != nil {
			return nil, err
		}
		counts[table] = count
	}
	return counts, nil
}

func (c *Client) tableNames(ctx context.Context) (tables []string, err error) {
	rows, err := c.DB.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("failed to query table names: %w", err)
	}
	defer logging.HandleDeferredError(&err, rows.Close, c.logger, "close_table_rows")

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
