package site

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

func (r *Repository) Create(ctx context.Context, therapistID string, req CreateSiteRequest) (*Site, error) {
	createdAt := time.Now()

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO sites (name, address, type, therapist_id, created_at) VALUES (?, ?, ?, ?, ?)",
		req.Name, req.Address, req.SiteType, therapistID, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert site: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get site id: %w", err)
	}

	return &Site{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		SiteType:    req.SiteType,
		TherapistID: therapistID,
		CreatedAt:   createdAt,
	}, nil
}

func (r *Repository) List(ctx context.Context, therapistID string) ([]Site, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, address, type, therapist_id, created_at FROM sites WHERE therapist_id = ? ORDER BY name ASC",
		therapistID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var sites []Site
	for rows.Next() {
		var s Site
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.SiteType, &s.TherapistID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sites: %w", err)
	}

	return sites, nil
}

func (r *Repository) GetByID(ctx context.Context, therapistID string, id int64) (*Site, error) {
	var s Site
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, address, type, therapist_id, created_at FROM sites WHERE id = ? AND therapist_id = ?",
		id, therapistID,
	).Scan(&s.ID, &s.Name, &s.Address, &s.SiteType, &s.TherapistID, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSiteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site: %w", err)
	}

	return &s, nil
}

func (r *Repository) Delete(ctx context.Context, therapistID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sites WHERE id = ? AND therapist_id = ?", id, therapistID)
	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrSiteNotFound
	}

	return nil
}

func (r *Repository) ClientCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE site_id = ?",
		id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count site clients: %w", err)
	}
	return count, nil
}
