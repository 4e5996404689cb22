package resources

import (
	"context"
	"errors"
	"testing"
)

type mockRepository struct {
	createFunc func(therapistID string, clientID int64, req CreateResourceRequest) (*Resource, error)
}

func (m *mockRepository) Create(ctx context.Context, therapistID string, clientID int64, req CreateResourceRequest) (*Resource, error) {
	if m.createFunc != nil {
		return m.createFunc(therapistID, clientID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListForClient(ctx context.Context, therapistID string, clientID int64) ([]Resource, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Delete(ctx context.Context, therapistID string, id int64) error {
	return errors.New("not implemented")
}

func TestCreateResource_RequiresTitle(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.Create(context.Background(), "alice", 1, CreateResourceRequest{URL: "https://example.com"})
	if err != ErrMissingTitle {
		t.Errorf("Expected ErrMissingTitle, got: %v", err)
	}
}

func TestCreateResource_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(therapistID string, clientID int64, req CreateResourceRequest) (*Resource, error) {
			return &Resource{ID: 1, ClientID: clientID, Title: req.Title}, nil
		},
	}
	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), "alice", 1, CreateResourceRequest{Title: "Grounding worksheet"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.Title != "Grounding worksheet" {
		t.Errorf("Expected title to round-trip, got %q", created.Title)
	}
}
