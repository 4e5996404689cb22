package checkin

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

func (r *Repository) Create(ctx context.Context, therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error) {
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
		`INSERT INTO therapist_checkins (client_id, date, therapist_id, energy_rating, focus_rating, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		clientID, req.Date, therapistID, req.EnergyRating, req.FocusRating, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert check-in: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in id: %w", err)
	}

	return &CheckIn{
		ID:           id,
		ClientID:     clientID,
		Date:         req.Date,
		TherapistID:  therapistID,
		EnergyRating: req.EnergyRating,
		FocusRating:  req.FocusRating,
		Notes:        req.Notes,
	}, nil
}

func (r *Repository) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]CheckIn, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, date, therapist_id, energy_rating, focus_rating, notes
		 FROM therapist_checkins WHERE client_id = ? AND therapist_id = ?
		 ORDER BY date DESC, id DESC`,
		clientID, therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	var checkins []CheckIn
	for rows.Next() {
		var c CheckIn
		var notes sql.NullString
		if err := rows.Scan(&c.ID, &c.ClientID, &c.Date, &c.TherapistID, &c.EnergyRating, &c.FocusRating, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		c.Notes = notes.String
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate check-ins: %w", err)
	}

	return checkins, nil
}
