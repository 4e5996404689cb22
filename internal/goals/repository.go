package goals

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO goal_templates (category, description) VALUES (?, ?)",
		req.Category, req.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert goal template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get template id: %w", err)
	}

	return &Template{ID: id, Category: req.Category, Description: req.Description}, nil
}

func (r *Repository) ListTemplates(ctx context.Context) ([]Template, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, category, description FROM goal_templates ORDER BY category ASC, description ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal templates: %w", err)
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.Category, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan goal template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal templates: %w", err)
	}

	return templates, nil
}

// DeleteTemplate removes a template and every client assignment of it
// in one transaction.
func (r *Repository) DeleteTemplate(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin template delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM client_goals WHERE template_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete goal assignments: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM goal_templates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete goal template: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrTemplateNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit template delete: %w", err)
	}

	return nil
}

func (r *Repository) GetTemplate(ctx context.Context, id int64) (*Template, error) {
	var t Template
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category, description FROM goal_templates WHERE id = ?", id,
	).Scan(&t.ID, &t.Category, &t.Description)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal template: %w", err)
	}

	return &t, nil
}

func (r *Repository) AssignGoal(ctx context.Context, clientID, templateID int64) (*ClientGoal, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO client_goals (client_id, template_id) VALUES (?, ?)",
		clientID, templateID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateGoal
		}
		return nil, fmt.Errorf("failed to assign goal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment id: %w", err)
	}

	return &ClientGoal{ID: id, ClientID: clientID, TemplateID: templateID}, nil
}

func (r *Repository) ListClientGoals(ctx context.Context, clientID int64) ([]ClientGoal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cg.id, cg.client_id, cg.template_id, gt.category, gt.description
		 FROM client_goals cg
		 JOIN goal_templates gt ON gt.id = cg.template_id
		 WHERE cg.client_id = ?
		 ORDER BY gt.category ASC, gt.description ASC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query client goals: %w", err)
	}
	defer rows.Close()

	var assigned []ClientGoal
	for rows.Next() {
		var g ClientGoal
		if err := rows.Scan(&g.ID, &g.ClientID, &g.TemplateID, &g.Category, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan client goal: %w", err)
		}
		assigned = append(assigned, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client goals: %w", err)
	}

	return assigned, nil
}

func (r *Repository) RemoveGoal(ctx context.Context, clientID, templateID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM client_goals WHERE client_id = ? AND template_id = ?",
		clientID, templateID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove client goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}

	return nil
}
