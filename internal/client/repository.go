package client

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/TheraTrack/practice-service/internal/pagination"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, therapistID string, req CreateClientRequest) (*Client, error) {
	createdAt := time.Now()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (name, dob, diagnosis, history, status, site_id, therapist_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.Name, req.DOB, req.Diagnosis, req.History, req.Status, req.SiteID, therapistID, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get client id: %w", err)
	}

	return &Client{
		ID:          id,
		Name:        req.Name,
		DOB:         req.DOB,
		Diagnosis:   req.Diagnosis,
		History:     req.History,
		Status:      req.Status,
		SiteID:      req.SiteID,
		TherapistID: therapistID,
		CreatedAt:   createdAt,
	}, nil
}

func (r *Repository) List(ctx context.Context, therapistID string, params pagination.Params) ([]Client, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE therapist_id = ?", therapistID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, dob, diagnosis, history, status, site_id, therapist_id, created_at
		 FROM clients WHERE therapist_id = ?
		 ORDER BY name ASC LIMIT ? OFFSET ?`,
		therapistID, params.Limit, params.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate clients: %w", err)
	}

	return clients, total, nil
}

func (r *Repository) GetByID(ctx context.Context, therapistID string, id int64) (*Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, dob, diagnosis, history, status, site_id, therapist_id, created_at
		 FROM clients WHERE id = ? AND therapist_id = ?`,
		id, therapistID,
	)

	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus changes the client's status and returns the status it
// replaced, so callers can publish the transition.
func (r *Repository) UpdateStatus(ctx context.Context, therapistID string, id int64, status string) (string, error) {
	var oldStatus string
	err := r.db.QueryRowContext(ctx,
		"SELECT status FROM clients WHERE id = ? AND therapist_id = ?",
		id, therapistID,
	).Scan(&oldStatus)
	if err == sql.ErrNoRows {
		return "", ErrClientNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query client status: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		"UPDATE clients SET status = ? WHERE id = ? AND therapist_id = ?",
		status, id, therapistID,
	); err != nil {
		return "", fmt.Errorf("failed to update client status: %w", err)
	}

	return oldStatus, nil
}

func (r *Repository) UpdateHistory(ctx context.Context, therapistID string, id int64, history string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE clients SET history = ? WHERE id = ? AND therapist_id = ?",
		history, id, therapistID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client history: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete removes the client and every dependent row in a single
// transaction. Either the whole record disappears or none of it does.
func (r *Repository) Delete(ctx context.Context, therapistID string, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ? AND therapist_id = ?",
		id, therapistID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return ErrClientNotFound
	}

	cascade := []string{
		"DELETE FROM session_goals WHERE session_id IN (SELECT id FROM sessions WHERE client_id = ?)",
		"DELETE FROM sessions WHERE client_id = ?",
		"DELETE FROM soap_notes WHERE client_id = ?",
		"DELETE FROM client_goals WHERE client_id = ?",
		"DELETE FROM diagnostic_history WHERE client_id = ?",
		"DELETE FROM client_files WHERE client_id = ?",
		"DELETE FROM therapist_checkins WHERE client_id = ?",
		"DELETE FROM session_resources WHERE client_id = ?",
		"DELETE FROM session_plans WHERE client_id = ?",
		"DELETE FROM clients WHERE id = ?",
	}
	for _, stmt := range cascade {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("failed to cascade delete client: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete transaction: %w", err)
	}

	return nil
}

// AddDiagnosticEntry inserts a timeline row and mirrors the new
// diagnosis onto the client record in the same transaction.
func (r *Repository) AddDiagnosticEntry(ctx context.Context, therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin diagnostic transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ? AND therapist_id = ?",
		clientID, therapistID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return nil, ErrClientNotFound
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO diagnostic_history (client_id, date, diagnosis_code, diagnosis_description, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		clientID, req.Date, req.DiagnosisCode, req.DiagnosisDescription, req.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert diagnostic entry: %w", err)
	}

	diagnosis := req.DiagnosisCode + " - " + req.DiagnosisDescription
	if _, err := tx.ExecContext(ctx,
		"UPDATE clients SET diagnosis = ? WHERE id = ?",
		diagnosis, clientID,
	); err != nil {
		return nil, fmt.Errorf("failed to update client diagnosis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostic entry id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit diagnostic transaction: %w", err)
	}

	return &DiagnosticEntry{
		ID:                   id,
		ClientID:             clientID,
		Date:                 req.Date,
		DiagnosisCode:        req.DiagnosisCode,
		DiagnosisDescription: req.DiagnosisDescription,
		Notes:                req.Notes,
	}, nil
}

func (r *Repository) ListDiagnosticHistory(ctx context.Context, clientID int64) ([]DiagnosticEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, date, diagnosis_code, diagnosis_description, notes
		 FROM diagnostic_history WHERE client_id = ? ORDER BY date DESC, id DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnostic history: %w", err)
	}
	defer rows.Close()

	var entries []DiagnosticEntry
	for rows.Next() {
		var e DiagnosticEntry
		var notes sql.NullString
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Date, &e.DiagnosisCode, &e.DiagnosisDescription, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic entry: %w", err)
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate diagnostic history: %w", err)
	}

	return entries, nil
}

func (r *Repository) ActiveCount(ctx context.Context, therapistID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE therapist_id = ? AND status = 'Active'",
		therapistID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active clients: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*Client, error) {
	var c Client
	var dob, diagnosis, history sql.NullString
	var siteID sql.NullInt64

	err := row.Scan(&c.ID, &c.Name, &dob, &diagnosis, &history, &c.Status, &siteID, &c.TherapistID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}

	c.DOB = dob.String
	c.Diagnosis = diagnosis.String
	c.History = history.String
	if siteID.Valid {
		c.SiteID = &siteID.Int64
	}

	return &c, nil
}
