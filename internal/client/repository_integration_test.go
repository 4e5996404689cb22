package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/TheraTrack/practice-service/internal/db"
	"github.com/TheraTrack/practice-service/internal/pagination"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := db.Migrate(context.Background(), database); err != nil {
		t.Fatalf("Failed to migrate test store: %v", err)
	}

	return database
}

func TestRepository_CreateAndGet(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", CreateClientRequest{Name: "Bob", Status: "Active"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	found, err := repo.GetByID(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if found.Name != "Bob" {
		t.Errorf("Expected name 'Bob', got '%s'", found.Name)
	}
	if found.Status != "Active" {
		t.Errorf("Expected status 'Active', got '%s'", found.Status)
	}

	// Another therapist must not see the record.
	if _, err := repo.GetByID(ctx, "mallory", created.ID); err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound for other therapist, got: %v", err)
	}
}

func TestRepository_List_Pagination(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	names := []string{"Anna", "Bob", "Cara"}
	for _, name := range names {
		if _, err := repo.Create(ctx, "alice", CreateClientRequest{Name: name, Status: "Active"}); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	clients, total, err := repo.List(ctx, "alice", pagination.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if len(clients) != 2 {
		t.Errorf("Expected 2 clients on page 1, got %d", len(clients))
	}
	if clients[0].Name != "Anna" {
		t.Errorf("Expected 'Anna' first, got '%s'", clients[0].Name)
	}
}

func seedDependentRows(t *testing.T, database *sql.DB, clientID int64) {
	t.Helper()
	ctx := context.Background()

	result, err := database.ExecContext(ctx,
		"INSERT INTO sessions (client_id, date, session_number, rating, progress_notes, therapist_id) VALUES (?, '2026-01-10', 1, 7, 'notes', 'alice')",
		clientID)
	if err != nil {
		t.Fatalf("Failed to seed session: %v", err)
	}
	sessionID, _ := result.LastInsertId()

	stmts := []struct {
		query string
		args  []interface{}
	}{
		{"INSERT INTO session_goals (session_id, description) VALUES (?, 'Reduce symptoms of anxiety')", []interface{}{sessionID}},
		{"INSERT INTO soap_notes (client_id, date, subjective, objective, assessment, plan) VALUES (?, '2026-01-10', 's', 'o', 'a', 'p')", []interface{}{clientID}},
		{"INSERT INTO client_goals (client_id, template_id) VALUES (?, 1)", []interface{}{clientID}},
		{"INSERT INTO diagnostic_history (client_id, date, diagnosis_code, diagnosis_description, notes) VALUES (?, '2026-01-10', 'F41.1', 'GAD', '')", []interface{}{clientID}},
		{"INSERT INTO client_files (client_id, filename, filetype, filedata, upload_date) VALUES (?, 'a.txt', 'text/plain', 'aGVsbG8=', '2026-01-10')", []interface{}{clientID}},
		{"INSERT INTO therapist_checkins (client_id, date, therapist_id, energy_rating, focus_rating, notes) VALUES (?, '2026-01-10', 'alice', 5, 6, '')", []interface{}{clientID}},
		{"INSERT INTO session_resources (client_id, therapist_id, title, url, notes) VALUES (?, 'alice', 'Workbook', '', '')", []interface{}{clientID}},
		{"INSERT INTO session_plans (client_id, plan_date, intro, check_in, warm_up, main_activity, reflection, props, closing, notes, therapist_id) VALUES (?, '2026-01-10', '', '', '', '', '', '', '', '', 'alice')", []interface{}{clientID}},
	}
	for _, s := range stmts {
		if _, err := database.ExecContext(ctx, s.query, s.args...); err != nil {
			t.Fatalf("Failed to seed dependent row: %v", err)
		}
	}
}

func countRows(t *testing.T, database *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var count int
	if err := database.QueryRowContext(context.Background(), query, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return count
}

func TestRepository_Delete_CascadesAtomically(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	doomed, err := repo.Create(ctx, "alice", CreateClientRequest{Name: "Doomed", Status: "Active"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	survivor, err := repo.Create(ctx, "alice", CreateClientRequest{Name: "Survivor", Status: "Active"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	seedDependentRows(t, database, doomed.ID)
	seedDependentRows(t, database, survivor.ID)

	if err := repo.Delete(ctx, "alice", doomed.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	dependents := []string{
		"SELECT COUNT(*) FROM sessions WHERE client_id = ?",
		"SELECT COUNT(*) FROM session_goals WHERE session_id IN (SELECT id FROM sessions WHERE client_id = ?)",
		"SELECT COUNT(*) FROM soap_notes WHERE client_id = ?",
		"SELECT COUNT(*) FROM client_goals WHERE client_id = ?",
		"SELECT COUNT(*) FROM diagnostic_history WHERE client_id = ?",
		"SELECT COUNT(*) FROM client_files WHERE client_id = ?",
		"SELECT COUNT(*) FROM therapist_checkins WHERE client_id = ?",
		"SELECT COUNT(*) FROM session_resources WHERE client_id = ?",
		"SELECT COUNT(*) FROM session_plans WHERE client_id = ?",
	}
	for _, q := range dependents {
		if got := countRows(t, database, q, doomed.ID); got != 0 {
			t.Errorf("Expected 0 dependent rows for deleted client (%s), got %d", q, got)
		}
	}

	if _, err := repo.GetByID(ctx, "alice", doomed.ID); err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound for deleted client, got: %v", err)
	}

	// The other client's record graph is untouched.
	if got := countRows(t, database, "SELECT COUNT(*) FROM sessions WHERE client_id = ?", survivor.ID); got != 1 {
		t.Errorf("Expected survivor's session intact, got %d rows", got)
	}
	if got := countRows(t, database, "SELECT COUNT(*) FROM client_files WHERE client_id = ?", survivor.ID); got != 1 {
		t.Errorf("Expected survivor's file intact, got %d rows", got)
	}
	if _, err := repo.GetByID(ctx, "alice", survivor.ID); err != nil {
		t.Errorf("Expected survivor to remain, got: %v", err)
	}
}

func TestRepository_Delete_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)

	if err := repo.Delete(context.Background(), "alice", 999); err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound, got: %v", err)
	}
}

func TestRepository_AddDiagnosticEntry_MirrorsDiagnosis(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", CreateClientRequest{Name: "Bob", Status: "Active"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	_, err = repo.AddDiagnosticEntry(ctx, "alice", created.ID, CreateDiagnosticRequest{
		Date:                 "2026-02-01",
		DiagnosisCode:        "F41.1",
		DiagnosisDescription: "Generalized anxiety disorder",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	found, err := repo.GetByID(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := "F41.1 - Generalized anxiety disorder"
	if found.Diagnosis != want {
		t.Errorf("Expected diagnosis '%s', got '%s'", want, found.Diagnosis)
	}
}
