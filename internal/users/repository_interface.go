package users

import "context"

// RepositoryInterface defines the credential store contract
type RepositoryInterface interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

var _ RepositoryInterface = (*Repository)(nil)
