package files

import (
	"context"
	"encoding/base64"
	"log"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Upload validates and stores an attachment. The payload must decode
// from base64 and its decoded size must not exceed MaxFileSize; the
// check runs before anything touches the store.
func (s *Service) Upload(ctx context.Context, therapistID string, clientID int64, req UploadRequest) (*File, error) {
	if req.Filename == "" {
		return nil, ErrMissingFilename
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	if len(decoded) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	exists, err := s.repo.ClientExists(ctx, therapistID, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	created, err := s.repo.Create(ctx, clientID, req.Filename, req.Filetype, req.Data)
	if err != nil {
		return nil, err
	}
	created.Size = len(decoded)

	log.Printf("✓ File uploaded: %s (%d bytes) for client %d", created.Filename, len(decoded), clientID)
	return created, nil
}

func (s *Service) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]File, error) {
	exists, err := s.repo.ClientExists(ctx, therapistID, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}
	return s.repo.ListForClient(ctx, clientID)
}

// Download returns the decoded payload together with its metadata.
func (s *Service) Download(ctx context.Context, id int64) (*File, []byte, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	decoded, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		return nil, nil, ErrInvalidPayload
	}

	return f, decoded, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
