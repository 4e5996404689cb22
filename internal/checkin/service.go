package checkin

import (
	"context"
	"time"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, therapistID string, clientID int64, req CreateCheckInRequest) (*CheckIn, error) {
	if req.EnergyRating < 1 || req.EnergyRating > 10 || req.FocusRating < 1 || req.FocusRating > 10 {
		return nil, ErrInvalidRating
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	return s.repo.Create(ctx, therapistID, clientID, req)
}

func (s *Service) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]CheckIn, error) {
	return s.repo.ListForClient(ctx, therapistID, clientID)
}
