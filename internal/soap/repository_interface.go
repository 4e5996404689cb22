package soap

import "context"

type RepositoryInterface interface {
	Add(ctx context.Context, therapistID string, clientID int64, subjective, objective, assessment, plan string) (*Note, error)
	ListForClient(ctx context.Context, clientID int64) ([]Note, error)
	LatestPerClient(ctx context.Context, therapistID string) ([]LatestNote, error)
}

var _ RepositoryInterface = (*Repository)(nil)
