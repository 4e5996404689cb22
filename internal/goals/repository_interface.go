package goals

import "context"

type RepositoryInterface interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error)
	ListTemplates(ctx context.Context) ([]Template, error)
	GetTemplate(ctx context.Context, id int64) (*Template, error)
	DeleteTemplate(ctx context.Context, id int64) error
	AssignGoal(ctx context.Context, clientID, templateID int64) (*ClientGoal, error)
	ListClientGoals(ctx context.Context, clientID int64) ([]ClientGoal, error)
	RemoveGoal(ctx context.Context, clientID, templateID int64) error
}

var _ RepositoryInterface = (*Repository)(nil)
