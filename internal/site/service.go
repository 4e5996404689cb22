package site

import (
	"context"
	"fmt"
	"log"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, therapistID string, req CreateSiteRequest) (*Site, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.Address == "" {
		return nil, ErrMissingAddress
	}
	if req.SiteType == "" {
		req.SiteType = "Office/Clinic"
	}
	if !IsValidSiteType(req.SiteType) {
		return nil, ErrInvalidSiteType
	}

	created, err := s.repo.Create(ctx, therapistID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	log.Printf("✓ Site created: %s (%s)", created.Name, created.SiteType)
	return created, nil
}

func (s *Service) List(ctx context.Context, therapistID string) ([]Site, error) {
	return s.repo.List(ctx, therapistID)
}

func (s *Service) GetByID(ctx context.Context, therapistID string, id int64) (*Site, error) {
	return s.repo.GetByID(ctx, therapistID, id)
}

// Delete removes a site. Sites with clients assigned are protected so
// that no client ends up pointing at a missing location.
func (s *Service) Delete(ctx context.Context, therapistID string, id int64) error {
	count, err := s.repo.ClientCount(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check site usage: %w", err)
	}
	if count > 0 {
		return ErrSiteInUse
	}

	return s.repo.Delete(ctx, therapistID, id)
}
