package site

import "context"

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, req CreateSiteRequest) (*Site, error)
	List(ctx context.Context, therapistID string) ([]Site, error)
	GetByID(ctx context.Context, therapistID string, id int64) (*Site, error)
	Delete(ctx context.Context, therapistID string, id int64) error
	ClientCount(ctx context.Context, id int64) (int, error)
}

var _ RepositoryInterface = (*Repository)(nil)
