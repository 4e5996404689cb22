package goals

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

func TestAssignGoal_UniquePerClient(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	template, err := repo.CreateTemplate(ctx, CreateTemplateRequest{
		Category:    "Emotional & Psychological Well-being",
		Description: "Reduce symptoms of anxiety, depression, and stress",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := repo.AssignGoal(ctx, 1, template.ID); err != nil {
		t.Fatalf("Expected no error on first assignment, got: %v", err)
	}

	// Assigning the same template to the same client again is rejected.
	if _, err := repo.AssignGoal(ctx, 1, template.ID); err != ErrDuplicateGoal {
		t.Errorf("Expected ErrDuplicateGoal, got: %v", err)
	}

	// But a different client can carry the same template.
	if _, err := repo.AssignGoal(ctx, 2, template.ID); err != nil {
		t.Errorf("Expected no error for second client, got: %v", err)
	}
}

func TestDeleteTemplate_CascadesAssignments(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)
	ctx := context.Background()

	template, err := repo.CreateTemplate(ctx, CreateTemplateRequest{
		Category:    "Physical Health & Function",
		Description: "Reduce muscle tension and chronic pain",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	keep, err := repo.CreateTemplate(ctx, CreateTemplateRequest{
		Category:    "Physical Health & Function",
		Description: "Increase body awareness and mind-body connection",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := repo.AssignGoal(ctx, 1, template.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := repo.AssignGoal(ctx, 1, keep.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if err := repo.DeleteTemplate(ctx, template.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	assigned, err := repo.ListClientGoals(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(assigned) != 1 {
		t.Fatalf("Expected 1 remaining assignment, got %d", len(assigned))
	}
	if assigned[0].TemplateID != keep.ID {
		t.Errorf("Expected surviving assignment to reference template %d, got %d", keep.ID, assigned[0].TemplateID)
	}
}

func TestDeleteTemplate_NotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := NewRepository(database)

	if err := repo.DeleteTemplate(context.Background(), 999); err != ErrTemplateNotFound {
		t.Errorf("Expected ErrTemplateNotFound, got: %v", err)
	}
}

func TestCreateTemplate_Validation(t *testing.T) {
	service := NewService(NewRepository(setupTestDB(t)))

	if _, err := service.CreateTemplate(context.Background(), CreateTemplateRequest{Category: "Physical Health & Function"}); err != ErrMissingDescription {
		t.Errorf("Expected ErrMissingDescription, got: %v", err)
	}
	if _, err := service.CreateTemplate(context.Background(), CreateTemplateRequest{Category: "Misc", Description: "x"}); err != ErrInvalidCategory {
		t.Errorf("Expected ErrInvalidCategory, got: %v", err)
	}
}
