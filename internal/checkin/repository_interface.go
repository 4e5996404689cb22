package checkin

import "context"

type RepositoryInterface interface {
	Create(ctx context.Context, therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error)
	ListForClient(ctx context.Context, therapistID string, clientID int64) ([]CheckIn, error)
}

var _ RepositoryInterface = (*Repository)(nil)
