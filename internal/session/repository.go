package session

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/TheraTrack/practice-service/internal/pagination"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the session and its goal rows in one transaction. The
// session number continues the client's sequence.
func (r *Repository) Create(ctx context.Context, therapistID string, req CreateSessionRequest) (*Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin session transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ? AND therapist_id = ?",
		req.ClientID, therapistID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if exists == 0 {
		return nil, ErrClientNotFound
	}

	var sessionNumber int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(session_number), 0) + 1 FROM sessions WHERE client_id = ?",
		req.ClientID,
	).Scan(&sessionNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to compute session number: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (client_id, date, session_time, session_number, rating, progress_notes, therapist_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.ClientID, req.Date, req.SessionTime, sessionNumber, req.Rating, req.ProgressNotes, therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get session id: %w", err)
	}

	for _, goal := range req.Goals {
		if goal == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO session_goals (session_id, description) VALUES (?, ?)",
			id, goal,
		); err != nil {
			return nil, fmt.Errorf("failed to insert session goal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session transaction: %w", err)
	}

	return &Session{
		ID:            id,
		ClientID:      req.ClientID,
		Date:          req.Date,
		SessionTime:   req.SessionTime,
		SessionNumber: sessionNumber,
		Rating:        req.Rating,
		ProgressNotes: req.ProgressNotes,
		TherapistID:   therapistID,
		Goals:         req.Goals,
	}, nil
}

func (r *Repository) ListForClient(ctx context.Context, therapistID string, clientID int64, params pagination.Params) ([]Session, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE client_id = ? AND therapist_id = ?",
		clientID, therapistID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, date, session_time, session_number, rating, progress_notes, therapist_id
		 FROM sessions WHERE client_id = ? AND therapist_id = ?
		 ORDER BY date DESC, session_number DESC
		 LIMIT ? OFFSET ?`,
		clientID, therapistID, params.Limit, params.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	for i := range sessions {
		goals, err := r.goalsForSession(ctx, sessions[i].ID)
		if err != nil {
			return nil, 0, err
		}
		sessions[i].Goals = goals
	}

	return sessions, total, nil
}

// Recent returns the therapist's latest sessions across all clients,
// newest first, for the dashboard.
func (r *Repository) Recent(ctx context.Context, therapistID string, limit int) ([]FilteredSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT s.id, s.client_id, c.name, s.date, s.session_time, s.session_number, s.rating, s.progress_notes
		 FROM sessions s
		 JOIN clients c ON c.id = s.client_id
		 WHERE s.therapist_id = ?
		 ORDER BY s.date DESC, s.id DESC
		 LIMIT ?`,
		therapistID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := collectFiltered(rows)
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		goals, err := r.goalsForSession(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Goals = goals
	}

	return sessions, nil
}

// Filter returns sessions matching the analytics criteria: exact
// client name, case-insensitive goal keyword, inclusive date range.
func (r *Repository) Filter(ctx context.Context, therapistID string, f Filter) ([]FilteredSession, error) {
	query := strings.Builder{}
	query.WriteString(
		`SELECT s.id, s.client_id, c.name, s.date, s.session_time, s.session_number, s.rating, s.progress_notes
		 FROM sessions s
		 JOIN clients c ON c.id = s.client_id
		 WHERE s.therapist_id = ?`)
	args := []interface{}{therapistID}

	if f.ClientName != "" {
		query.WriteString(" AND c.name = ?")
		args = append(args, f.ClientName)
	}
	if f.StartDate != "" {
		query.WriteString(" AND s.date >= ?")
		args = append(args, f.StartDate)
	}
	if f.EndDate != "" {
		query.WriteString(" AND s.date <= ?")
		args = append(args, f.EndDate)
	}
	if f.GoalKeyword != "" {
		query.WriteString(` AND EXISTS (
			SELECT 1 FROM session_goals sg
			WHERE sg.session_id = s.id AND LOWER(sg.description) LIKE '%' || LOWER(?) || '%')`)
		args = append(args, f.GoalKeyword)
	}

	query.WriteString(" ORDER BY s.date ASC, s.id ASC")

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := collectFiltered(rows)
	if err != nil {
		return nil, err
	}

	for i := range sessions {
		goals, err := r.goalsForSession(ctx, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Goals = goals
	}

	return sessions, nil
}

func (r *Repository) TotalCount(ctx context.Context, therapistID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE therapist_id = ?", therapistID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (r *Repository) goalsForSession(ctx context.Context, sessionID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT description FROM session_goals WHERE session_id = ? ORDER BY id ASC",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query session goals: %w", err)
	}
	defer rows.Close()

	var goals []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("failed to scan session goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session goals: %w", err)
	}

	return goals, nil
}

func scanSession(rows *sql.Rows) (*Session, error) {
	var s Session
	var sessionTime, notes sql.NullString
	if err := rows.Scan(&s.ID, &s.ClientID, &s.Date, &sessionTime, &s.SessionNumber, &s.Rating, &notes, &s.TherapistID); err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	s.SessionTime = sessionTime.String
	s.ProgressNotes = notes.String
	return &s, nil
}

func collectFiltered(rows *sql.Rows) ([]FilteredSession, error) {
	var sessions []FilteredSession
	for rows.Next() {
		var s FilteredSession
		var sessionTime, notes sql.NullString
		if err := rows.Scan(&s.ID, &s.ClientID, &s.ClientName, &s.Date, &sessionTime, &s.SessionNumber, &s.Rating, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		s.SessionTime = sessionTime.String
		s.ProgressNotes = notes.String
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session rows: %w", err)
	}
	return sessions, nil
}
