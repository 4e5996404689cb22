package session

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

func TestCreateSession_NumbersSequence(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "Bob", "alice")

	first, err := repo.Create(ctx, "alice", CreateSessionRequest{
		ClientID: clientID, Date: "2026-01-05", Rating: 6,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if first.SessionNumber != 1 {
		t.Errorf("Expected session number 1, got %d", first.SessionNumber)
	}

	second, err := repo.Create(ctx, "alice", CreateSessionRequest{
		ClientID: clientID, Date: "2026-01-12", Rating: 8,
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if second.SessionNumber != 2 {
		t.Errorf("Expected session number 2, got %d", second.SessionNumber)
	}
}

func TestCreateSession_ClientScoped(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)

	clientID := seedClient(t, database, "Bob", "alice")

	_, err := repo.Create(context.Background(), "mallory", CreateSessionRequest{
		ClientID: clientID, Date: "2026-01-05", Rating: 6,
	})
	if err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound for other therapist, got: %v", err)
	}
}

func TestCreateSession_StoresGoals(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	clientID := seedClient(t, database, "Bob", "alice")

	created, err := repo.Create(ctx, "alice", CreateSessionRequest{
		ClientID: clientID,
		Date:     "2026-01-05",
		Rating:   7,
		Goals:    []string{"Reduce symptoms of anxiety, depression, and stress", "Build trust and empathy in relationships"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sessions, _, err := repo.ListForClient(ctx, "alice", clientID, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	if len(sessions[0].Goals) != 2 {
		t.Fatalf("Expected 2 goals, got %d", len(sessions[0].Goals))
	}
	if sessions[0].ID != created.ID {
		t.Errorf("Expected session id %d, got %d", created.ID, sessions[0].ID)
	}
}

func TestFilter_Criteria(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	bob := seedClient(t, database, "Bob", "alice")
	cara := seedClient(t, database, "Cara", "alice")

	mustCreate := func(clientID int64, date string, rating int, goals ...string) {
		t.Helper()
		if _, err := repo.Create(ctx, "alice", CreateSessionRequest{
			ClientID: clientID, Date: date, Rating: rating, Goals: goals,
		}); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	mustCreate(bob, "2026-01-05", 6, "Reduce symptoms of anxiety, depression, and stress")
	mustCreate(bob, "2026-02-10", 8, "Build trust and empathy in relationships")
	mustCreate(cara, "2026-01-20", 5, "Reduce symptoms of anxiety, depression, and stress")

	// Exact client name.
	byName, err := repo.Filter(ctx, "alice", Filter{ClientName: "Bob"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(byName) != 2 {
		t.Errorf("Expected 2 sessions for Bob, got %d", len(byName))
	}

	// Case-insensitive goal keyword.
	byGoal, err := repo.Filter(ctx, "alice", Filter{GoalKeyword: "ANXIETY"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(byGoal) != 2 {
		t.Errorf("Expected 2 sessions matching keyword, got %d", len(byGoal))
	}

	// Inclusive date range.
	byDate, err := repo.Filter(ctx, "alice", Filter{StartDate: "2026-01-05", EndDate: "2026-01-20"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("Expected 2 sessions in range, got %d", len(byDate))
	}

	// Combined.
	combined, err := repo.Filter(ctx, "alice", Filter{ClientName: "Bob", GoalKeyword: "anxiety"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(combined) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(combined))
	}
	if combined[0].Rating != 6 {
		t.Errorf("Expected rating 6, got %d", combined[0].Rating)
	}
}

func TestRecent_NewestFirst(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	bob := seedClient(t, database, "Bob", "alice")

	dates := []string{"2026-01-01", "2026-01-08", "2026-01-15", "2026-01-22", "2026-01-29", "2026-02-05"}
	for _, d := range dates {
		if _, err := repo.Create(ctx, "alice", CreateSessionRequest{ClientID: bob, Date: d, Rating: 5}); err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, "alice", 5)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("Expected 5 recent sessions, got %d", len(recent))
	}
	if recent[0].Date != "2026-02-05" {
		t.Errorf("Expected newest session first, got date '%s'", recent[0].Date)
	}
	if recent[4].Date != "2026-01-08" {
		t.Errorf("Expected '2026-01-08' last, got '%s'", recent[4].Date)
	}
}
