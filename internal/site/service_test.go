package site

import (
	"context"
	"errors"
	"testing"
)

type mockRepository struct {
	createFunc      func(therapistID string, req CreateSiteRequest) (*Site, error)
	listFunc        func(therapistID string) ([]Site, error)
	getByIDFunc     func(therapistID string, id int64) (*Site, error)
	deleteFunc      func(therapistID string, id int64) error
	clientCountFunc func(id int64) (int, error)
}

func (m *mockRepository) Create(ctx context.Context, therapistID string, req CreateSiteRequest) (*Site, error) {
	if m.createFunc != nil {
		return m.createFunc(therapistID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) List(ctx context.Context, therapistID string) ([]Site, error) {
	if m.listFunc != nil {
		return m.listFunc(therapistID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) GetByID(ctx context.Context, therapistID string, id int64) (*Site, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(therapistID, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) Delete(ctx context.Context, therapistID string, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(therapistID, id)
	}
	return errors.New("not implemented")
}

func (m *mockRepository) ClientCount(ctx context.Context, id int64) (int, error) {
	if m.clientCountFunc != nil {
		return m.clientCountFunc(id)
	}
	return 0, errors.New("not implemented")
}

func TestCreateSite_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(therapistID string, req CreateSiteRequest) (*Site, error) {
			return &Site{ID: 1, Name: req.Name, Address: req.Address, SiteType: req.SiteType, TherapistID: therapistID}, nil
		},
	}
	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), "alice", CreateSiteRequest{
		Name:     "Clinic A",
		Address:  "12 Main St",
		SiteType: "School",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.SiteType != "School" {
		t.Errorf("Expected site type 'School', got '%s'", created.SiteType)
	}
	if created.TherapistID != "alice" {
		t.Errorf("Expected therapist 'alice', got '%s'", created.TherapistID)
	}
}

func TestCreateSite_DefaultsType(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(therapistID string, req CreateSiteRequest) (*Site, error) {
			return &Site{ID: 1, Name: req.Name, Address: req.Address, SiteType: req.SiteType, TherapistID: therapistID}, nil
		},
	}
	service := NewService(mockRepo)

	created, err := service.Create(context.Background(), "alice", CreateSiteRequest{
		Name:    "Clinic A",
		Address: "12 Main St",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.SiteType != "Office/Clinic" {
		t.Errorf("Expected default site type 'Office/Clinic', got '%s'", created.SiteType)
	}
}

func TestCreateSite_ValidationErrors(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.Create(context.Background(), "alice", CreateSiteRequest{Address: "x"}); err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
	if _, err := service.Create(context.Background(), "alice", CreateSiteRequest{Name: "x"}); err != ErrMissingAddress {
		t.Errorf("Expected ErrMissingAddress, got: %v", err)
	}
	if _, err := service.Create(context.Background(), "alice", CreateSiteRequest{Name: "x", Address: "y", SiteType: "Spaceship"}); err != ErrInvalidSiteType {
		t.Errorf("Expected ErrInvalidSiteType, got: %v", err)
	}
}

func TestDeleteSite_BlockedWhenInUse(t *testing.T) {
	mockRepo := &mockRepository{
		clientCountFunc: func(id int64) (int, error) { return 3, nil },
	}
	service := NewService(mockRepo)

	err := service.Delete(context.Background(), "alice", 1)
	if err != ErrSiteInUse {
		t.Errorf("Expected ErrSiteInUse, got: %v", err)
	}
}

func TestDeleteSite_Success(t *testing.T) {
	deleted := false
	mockRepo := &mockRepository{
		clientCountFunc: func(id int64) (int, error) { return 0, nil },
		deleteFunc: func(therapistID string, id int64) error {
			deleted = true
			return nil
		},
	}
	service := NewService(mockRepo)

	if err := service.Delete(context.Background(), "alice", 1); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to be called")
	}
}
