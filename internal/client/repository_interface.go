package client

import (
	"context"

	"github.com/TheraTrack/practice-service/internal/pagination"
)

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, req CreateClientRequest) (*Client, error)
	List(ctx context.Context, therapistID string, params pagination.Params) ([]Client, int, error)
	GetByID(ctx context.Context, therapistID string, id int64) (*Client, error)
	UpdateStatus(ctx context.Context, therapistID string, id int64, status string) (string, error)
	UpdateHistory(ctx context.Context, therapistID string, id int64, history string) error
	Delete(ctx context.Context, therapistID string, id int64) error
	AddDiagnosticEntry(ctx context.Context, therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error)
	ListDiagnosticHistory(ctx context.Context, clientID int64) ([]DiagnosticEntry, error)
	ActiveCount(ctx context.Context, therapistID string) (int, error)
}

var _ RepositoryInterface = (*Repository)(nil)
