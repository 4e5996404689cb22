package soap

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Add(ctx context.Context, therapistID string, clientID int64, subjective, objective, assessment, plan string) (*Note, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ? AND therapist_id = ?",
		clientID, therapistID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return nil, ErrClientNotFound
	}

	date := time.Now()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO soap_notes (client_id, date, subjective, objective, assessment, plan)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		clientID, date, subjective, objective, assessment, plan,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get note id: %w", err)
	}

	return &Note{
		ID:         id,
		ClientID:   clientID,
		Date:       date,
		Subjective: subjective,
		Objective:  objective,
		Assessment: assessment,
		Plan:       plan,
	}, nil
}

func (r *Repository) ListForClient(ctx context.Context, clientID int64) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, date, subjective, objective, assessment, plan
		 FROM soap_notes WHERE client_id = ?
		 ORDER BY date DESC, id DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		var subjective, objective, assessment, plan sql.NullString
		if err := rows.Scan(&n.ID, &n.ClientID, &n.Date, &subjective, &objective, &assessment, &plan); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Subjective = subjective.String
		n.Objective = objective.String
		n.Assessment = assessment.String
		n.Plan = plan.String
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// LatestPerClient returns each client's most recent note for the given
// therapist. Ties on date resolve to the later insertion.
func (r *Repository) LatestPerClient(ctx context.Context, therapistID string) ([]LatestNote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.status, n.date, n.assessment
		 FROM clients c
		 JOIN soap_notes n ON n.client_id = c.id
		 WHERE c.therapist_id = ?
		 AND n.id = (
			SELECT n2.id FROM soap_notes n2
			WHERE n2.client_id = c.id
			ORDER BY n2.date DESC, n2.id DESC
			LIMIT 1
		 )
		 ORDER BY c.name ASC`,
		therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest notes: %w", err)
	}
	defer rows.Close()

	var latest []LatestNote
	for rows.Next() {
		var l LatestNote
		var assessment sql.NullString
		if err := rows.Scan(&l.ClientID, &l.ClientName, &l.Status, &l.Date, &assessment); err != nil {
			return nil, fmt.Errorf("failed to scan latest note: %w", err)
		}
		l.Assessment = assessment.String
		latest = append(latest, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate latest notes: %w", err)
	}

	return latest, nil
}
