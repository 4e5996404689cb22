package plan

import "context"

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, clientID int64, req CreatePlanRequest) (*Plan, error)
	ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Plan, error)
	Delete(ctx context.Context, therapistID string, id int64) error
}

var _ RepositoryInterface = (*Repository)(nil)
