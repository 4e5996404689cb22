package goals

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

func (s *Service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	if req.Description == "" {
		return nil, ErrMissingDescription
	}
	if !IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	created, err := s.repo.CreateTemplate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal template: %w", err)
	}

	log.Printf("✓ Goal template created: %s", created.Description)
	return created, nil
}

func (s *Service) ListTemplates(ctx context.Context) ([]Template, error) {
	return s.repo.ListTemplates(ctx)
}

// DeleteTemplate removes the template catalogue entry together with
// every client assignment referencing it.
func (s *Service) DeleteTemplate(ctx context.Context, id int64) error {
	return s.repo.DeleteTemplate(ctx, id)
}

func (s *Service) AssignGoal(ctx context.Context, clientID, templateID int64) (*ClientGoal, error) {
	template, err := s.repo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.repo.AssignGoal(ctx, clientID, templateID)
	if err != nil {
		return nil, err
	}

	assigned.Category = template.Category
	assigned.Description = template.Description
	return assigned, nil
}

func (s *Service) ListClientGoals(ctx context.Context, clientID int64) ([]ClientGoal, error) {
	return s.repo.ListClientGoals(ctx, clientID)
}

func (s *Service) RemoveGoal(ctx context.Context, clientID, templateID int64) error {
	return s.repo.RemoveGoal(ctx, clientID, templateID)
}
