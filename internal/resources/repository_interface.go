package resources

import "context"

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, clientID int64, req CreateResourceRequest) (*Resource, error)
	ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Resource, error)
	Delete(ctx context.Context, therapistID string, id int64) error
}

var _ RepositoryInterface = (*Repository)(nil)
