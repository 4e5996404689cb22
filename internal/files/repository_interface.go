package files

import "context"

type RepositoryInterface interface {
	ClientExists(ctx context.Context, therapistID string, clientID int64) (bool, error)
	Create(ctx context.Context, clientID int64, filename, filetype, data string) (*File, error)
	ListForClient(ctx context.Context, clientID int64) ([]File, error)
	GetByID(ctx context.Context, id int64) (*File, error)
	Delete(ctx context.Context, id int64) error
}

var _ RepositoryInterface = (*Repository)(nil)
