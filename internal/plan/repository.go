package plan

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

func (r *Repository) Create(ctx context.Context, therapistID string, clientID int64, req CreatePlanRequest) (*Plan, error) {
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
		`INSERT INTO session_plans (client_id, plan_date, intro, check_in, warm_up, main_activity, reflection, props, closing, notes, therapist_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		clientID, req.PlanDate, req.Intro, req.CheckIn, req.WarmUp, req.MainActivity,
		req.Reflection, req.Props, req.Closing, req.Notes, therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get plan id: %w", err)
	}

	return &Plan{
		ID:           id,
		ClientID:     clientID,
		PlanDate:     req.PlanDate,
		Intro:        req.Intro,
		CheckIn:      req.CheckIn,
		WarmUp:       req.WarmUp,
		MainActivity: req.MainActivity,
		Reflection:   req.Reflection,
		Props:        req.Props,
		Closing:      req.Closing,
		Notes:        req.Notes,
		TherapistID:  therapistID,
	}, nil
}

func (r *Repository) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Plan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, plan_date, intro, check_in, warm_up, main_activity, reflection, props, closing, notes, therapist_id
		 FROM session_plans WHERE client_id = ? AND therapist_id = ?
		 ORDER BY plan_date DESC, id DESC`,
		clientID, therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query session plans: %w", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		var intro, checkIn, warmUp, main, reflection, props, closing, notes sql.NullString
		if err := rows.Scan(&p.ID, &p.ClientID, &p.PlanDate, &intro, &checkIn, &warmUp, &main, &reflection, &props, &closing, &notes, &p.TherapistID); err != nil {
			return nil, fmt.Errorf("failed to scan session plan: %w", err)
		}
		p.Intro = intro.String
		p.CheckIn = checkIn.String
		p.WarmUp = warmUp.String
		p.MainActivity = main.String
		p.Reflection = reflection.String
		p.Props = props.String
		p.Closing = closing.String
		p.Notes = notes.String
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate session plans: %w", err)
	}

	return plans, nil
}

func (r *Repository) Delete(ctx context.Context, therapistID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM session_plans WHERE id = ? AND therapist_id = ?",
		id, therapistID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete session plan: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrPlanNotFound
	}

	return nil
}
