package session

import (
	"context"

	"github.com/TheraTrack/practice-service/internal/pagination"
)

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, req CreateSessionRequest) (*Session, error)
	ListForClient(ctx context.Context, therapistID string, clientID int64, params pagination.Params) ([]Session, int, error)
	Recent(ctx context.Context, therapistID string, limit int) ([]FilteredSession, error)
	Filter(ctx context.Context, therapistID string, f Filter) ([]FilteredSession, error)
	TotalCount(ctx context.Context, therapistID string) (int, error)
}

var _ RepositoryInterface = (*Repository)(nil)
