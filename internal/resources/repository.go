package resources

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, therapistID string, clientID int64, req CreateResourceRequest) (*Resource, error) {
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

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO session_resources (client_id, therapist_id, title, url, notes) VALUES (?, ?, ?, ?, ?)",
		clientID, therapistID, req.Title, req.URL, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert resource: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get resource id: %w", err)
	}

	return &Resource{
		ID:          id,
		ClientID:    clientID,
		TherapistID: therapistID,
		Title:       req.Title,
		URL:         req.URL,
		Notes:       req.Notes,
	}, nil
}

func (r *Repository) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Resource, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, therapist_id, title, url, notes
		 FROM session_resources WHERE client_id = ? AND therapist_id = ?
		 ORDER BY title ASC`,
		clientID, therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var list []Resource
	for rows.Next() {
		var res Resource
		var url, notes sql.NullString
		if err := rows.Scan(&res.ID, &res.ClientID, &res.TherapistID, &res.Title, &url, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		res.URL = url.String
		res.Notes = notes.String
		list = append(list, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}

	return list, nil
}

func (r *Repository) Delete(ctx context.Context, therapistID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM session_resources WHERE id = ? AND therapist_id = ?",
		id, therapistID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrResourceNotFound
	}

	return nil
}
