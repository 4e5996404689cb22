package files

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

func (r *Repository) ClientExists(ctx context.Context, therapistID string, clientID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM clients WHERE id = ? AND therapist_id = ?",
		clientID, therapistID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check client: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) Create(ctx context.Context, clientID int64, filename, filetype, data string) (*File, error) {
	uploadDate := time.Now().Format("2006-01-02")

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO client_files (client_id, filename, filetype, filedata, upload_date) VALUES (?, ?, ?, ?, ?)",
		clientID, filename, filetype, data, uploadDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get file id: %w", err)
	}

	return &File{
		ID:         id,
		ClientID:   clientID,
		Filename:   filename,
		Filetype:   filetype,
		UploadDate: uploadDate,
	}, nil
}

// ListForClient returns attachment metadata without payloads.
func (r *Repository) ListForClient(ctx context.Context, clientID int64) ([]File, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, client_id, filename, filetype, LENGTH(filedata), upload_date
		 FROM client_files WHERE client_id = ?
		 ORDER BY upload_date DESC, id DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	var list []File
	for rows.Next() {
		var f File
		var filetype sql.NullString
		if err := rows.Scan(&f.ID, &f.ClientID, &f.Filename, &filetype, &f.Size, &f.UploadDate); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		f.Filetype = filetype.String
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return list, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*File, error) {
	var f File
	var filetype sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT id, client_id, filename, filetype, filedata, upload_date FROM client_files WHERE id = ?",
		id,
	).Scan(&f.ID, &f.ClientID, &f.Filename, &filetype, &f.Data, &f.UploadDate)

	if err == sql.ErrNoRows {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query file: %w", err)
	}

	f.Filetype = filetype.String
	return &f, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM client_files WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}
