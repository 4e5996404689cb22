package db

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/XSAM/otelsql"
	_ "github.com/mattn/go-sqlite3"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Open creates a connection to the single-file SQLite store with
// OpenTelemetry instrumentation.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)

	database, err := otelsql.Open("sqlite3", dsn,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName(path),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Register database stats for metrics
	err = otelsql.RegisterDBStatsMetrics(database,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName(path),
		),
	)
	if err != nil {
		log.Printf("Warning: failed to register database stats metrics: %v", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite allows a single writer; a pool of one connection avoids
	// SQLITE_BUSY under the deployment model of one store file.
	database.SetMaxOpenConns(1)

	log.Println("✓ Connected to SQLite store (OpenTelemetry enabled)")
	return database, nil
}
