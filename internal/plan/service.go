package plan

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

func (s *Service) Create(ctx context.Context, therapistID string, clientID int64, req CreatePlanRequest) (*Plan, error) {
	if req.PlanDate == "" {
		req.PlanDate = time.Now().Format("2006-01-02")
	}
	return s.repo.Create(ctx, therapistID, clientID, req)
}

func (s *Service) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Plan, error) {
	return s.repo.ListForClient(ctx, therapistID, clientID)
}

func (s *Service) Delete(ctx context.Context, therapistID string, id int64) error {
	return s.repo.Delete(ctx, therapistID, id)
}
