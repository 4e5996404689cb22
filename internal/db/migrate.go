package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
)

// Table definitions for the practice store. Bootstrap policy is
// migrate forward, never back: tables are created when absent and
// later columns are patched in with addColumnIfMissing.
var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		type TEXT NOT NULL,
		therapist_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		dob DATE,
		diagnosis TEXT,
		history TEXT,
		therapist_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS goal_templates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS client_goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		template_id INTEGER NOT NULL,
		UNIQUE(client_id, template_id)
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		date DATE NOT NULL,
		session_number INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		progress_notes TEXT,
		therapist_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_goals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS soap_notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		date TIMESTAMP NOT NULL,
		subjective TEXT,
		objective TEXT,
		assessment TEXT,
		plan TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS session_plans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		plan_date DATE NOT NULL,
		intro TEXT,
		check_in TEXT,
		warm_up TEXT,
		main_activity TEXT,
		reflection TEXT,
		props TEXT,
		closing TEXT,
		notes TEXT,
		therapist_id TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS diagnostic_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		date DATE NOT NULL,
		diagnosis_code TEXT NOT NULL,
		diagnosis_description TEXT NOT NULL,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS client_files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		filename TEXT NOT NULL,
		filetype TEXT,
		filedata TEXT NOT NULL,
		upload_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS therapist_checkins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		date DATE NOT NULL,
		therapist_id TEXT NOT NULL,
		energy_rating INTEGER NOT NULL,
		focus_rating INTEGER NOT NULL,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS session_resources (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id INTEGER NOT NULL,
		therapist_id TEXT NOT NULL,
		title TEXT NOT NULL,
		url TEXT,
		notes TEXT
	)`,
}

// Migrate brings the store schema up to date. Idempotent; safe to run
// at every startup.
func Migrate(ctx context.Context, database *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	// Columns that arrived after the initial schema.
	patches := []struct {
		table, column, definition string
	}{
		{"clients", "status", "TEXT NOT NULL DEFAULT 'Active'"},
		{"clients", "site_id", "INTEGER"},
		{"sessions", "session_time", "TEXT"},
	}
	for _, p := range patches {
		if err := addColumnIfMissing(ctx, database, p.table, p.column, p.definition); err != nil {
			return err
		}
	}

	if err := canonicalizeStatuses(ctx, database); err != nil {
		return err
	}

	log.Println("✓ Store schema up to date")
	return nil
}

// addColumnIfMissing applies an ALTER TABLE ... ADD COLUMN, treating a
// duplicate-column error as success.
func addColumnIfMissing(ctx context.Context, database *sql.DB, table, column, definition string) error {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition)
	if _, err := database.ExecContext(ctx, stmt); err != nil {
		if strings.Contains(err.Error(), "duplicate column name") {
			return nil
		}
		return fmt.Errorf("failed to add column %s.%s: %w", table, column, err)
	}
	return nil
}

// canonicalizeStatuses rewrites client status labels left behind by
// earlier revisions of the schema into the canonical enumeration.
func canonicalizeStatuses(ctx context.Context, database *sql.DB) error {
	legacy := map[string]string{
		"Inactive":   "Inactive/On Hold",
		"On Hold":    "Inactive/On Hold",
		"Terminated": "Terminated/Completed",
		"Completed":  "Terminated/Completed",
		"No-Show":    "Terminated/No Show",
		"No Show":    "Terminated/No Show",
	}
	for old, canonical := range legacy {
		if _, err := database.ExecContext(ctx,
			"UPDATE clients SET status = ? WHERE status = ?", canonical, old); err != nil {
			return fmt.Errorf("failed to migrate legacy status %q: %w", old, err)
		}
	}
	return nil
}
