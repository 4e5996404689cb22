package soap

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/TheraTrack/practice-service/internal/db"
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

func seedClient(t *testing.T, database *sql.DB, name, therapistID string) int64 {
	t.Helper()
	result, err := database.ExecContext(context.Background(),
		"INSERT INTO clients (name, status, therapist_id, created_at) VALUES (?, 'Active', ?, CURRENT_TIMESTAMP)",
		name, therapistID)
	if err != nil {
		t.Fatalf("Failed to seed client: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

func TestAdd_ChecksOwnership(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)

	clientID := seedClient(t, database, "Bob", "alice")

	_, err := repo.Add(context.Background(), "mallory", clientID, "s", "o", "a", "p")
	if err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound for other therapist, got: %v", err)
	}
}

func TestListForClient_NewestFirst(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "Bob", "alice")

	for _, assessment := range []string{"Risk: None | Analysis: first", "Risk: None | Analysis: second"} {
		if _, err := repo.Add(ctx, "alice", clientID, "s", "o", assessment, "p"); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
	}

	notes, err := repo.ListForClient(ctx, clientID)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(notes))
	}
	if notes[0].Assessment != "Risk: None | Analysis: second" {
		t.Errorf("Expected newest note first, got %q", notes[0].Assessment)
	}
}

func TestLatestPerClient_OneRowPerClient(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	bob := seedClient(t, database, "Bob", "alice")
	cara := seedClient(t, database, "Cara", "alice")
	other := seedClient(t, database, "Other", "mallory")

	if _, err := repo.Add(ctx, "alice", bob, "s", "o", "Risk: Suicidal Ideation | Analysis: x", "p"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := repo.Add(ctx, "alice", bob, "s", "o", "Risk: None | Analysis: improved", "p"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := repo.Add(ctx, "alice", cara, "s", "o", "Risk: Self-Harm Risk | Analysis: y", "p"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := repo.Add(ctx, "mallory", other, "s", "o", "Risk: Grave Disability | Analysis: z", "p"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	latest, err := repo.LatestPerClient(ctx, "alice")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(latest) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(latest))
	}

	byName := map[string]LatestNote{}
	for _, l := range latest {
		byName[l.ClientName] = l
	}
	// Bob's superseded note must not surface.
	if byName["Bob"].Assessment != "Risk: None | Analysis: improved" {
		t.Errorf("Expected Bob's latest note, got %q", byName["Bob"].Assessment)
	}
	if byName["Cara"].Assessment != "Risk: Self-Harm Risk | Analysis: y" {
		t.Errorf("Expected Cara's note, got %q", byName["Cara"].Assessment)
	}
}
