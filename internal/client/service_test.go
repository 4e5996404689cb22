package client

import (
	"context"
	"errors"
	"testing"

	"github.com/TheraTrack/practice-service/internal/messaging"
	"github.com/TheraTrack/practice-service/internal/pagination"
)

type mockRepository struct {
	createFunc        func(therapistID string, req CreateClientRequest) (*Client, error)
	listFunc          func(therapistID string, params pagination.Params) ([]Client, int, error)
	getByIDFunc       func(therapistID string, id int64) (*Client, error)
	updateStatusFunc  func(therapistID string, id int64, status string) (string, error)
	updateHistoryFunc func(therapistID string, id int64, history string) error
	deleteFunc        func(therapistID string, id int64) error
	addDiagnosticFunc func(therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error)
	listDiagnosticFn  func(clientID int64) ([]DiagnosticEntry, error)
}

func (m *mockRepository) Create(ctx context.Context, therapistID string, req CreateClientRequest) (*Client, error) {
	if m.createFunc != nil {
		return m.createFunc(therapistID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) List(ctx context.Context, therapistID string, params pagination.Params) ([]Client, int, error) {
	if m.listFunc != nil {
		return m.listFunc(therapistID, params)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) GetByID(ctx context.Context, therapistID string, id int64) (*Client, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(therapistID, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) UpdateStatus(ctx context.Context, therapistID string, id int64, status string) (string, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(therapistID, id, status)
	}
	return "", errors.New("not implemented")
}

func (m *mockRepository) UpdateHistory(ctx context.Context, therapistID string, id int64, history string) error {
	if m.updateHistoryFunc != nil {
		return m.updateHistoryFunc(therapistID, id, history)
	}
	return errors.New("not implemented")
}

func (m *mockRepository) Delete(ctx context.Context, therapistID string, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(therapistID, id)
	}
	return errors.New("not implemented")
}

func (m *mockRepository) AddDiagnosticEntry(ctx context.Context, therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error) {
	if m.addDiagnosticFunc != nil {
		return m.addDiagnosticFunc(therapistID, clientID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListDiagnosticHistory(ctx context.Context, clientID int64) ([]DiagnosticEntry, error) {
	if m.listDiagnosticFn != nil {
		return m.listDiagnosticFn(clientID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ActiveCount(ctx context.Context, therapistID string) (int, error) {
	return 0, errors.New("not implemented")
}

type mockPublisher struct {
	published []string
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	m.published = append(m.published, routingKey)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func TestCreateClient_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(therapistID string, req CreateClientRequest) (*Client, error) {
			return &Client{ID: 1, Name: req.Name, Status: req.Status, TherapistID: therapistID}, nil
		},
	}
	publisher := &mockPublisher{}
	service := NewService(mockRepo, publisher, nil)

	created, err := service.Create(context.Background(), "alice", CreateClientRequest{Name: "Bob"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.Status != "Active" {
		t.Errorf("Expected default status 'Active', got '%s'", created.Status)
	}
	if len(publisher.published) != 1 || publisher.published[0] != messaging.EventClientCreated {
		t.Errorf("Expected client.created event, got: %v", publisher.published)
	}
}

func TestCreateClient_ValidationErrors(t *testing.T) {
	service := NewService(&mockRepository{}, &mockPublisher{}, nil)

	if _, err := service.Create(context.Background(), "alice", CreateClientRequest{}); err != ErrMissingName {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
	if _, err := service.Create(context.Background(), "alice", CreateClientRequest{Name: "Bob", Status: "Archived"}); err != ErrInvalidStatus {
		t.Errorf("Expected ErrInvalidStatus, got: %v", err)
	}
}

func TestUpdateStatus_PublishesTransition(t *testing.T) {
	mockRepo := &mockRepository{
		updateStatusFunc: func(therapistID string, id int64, status string) (string, error) {
			return "Active", nil
		},
	}
	publisher := &mockPublisher{}
	service := NewService(mockRepo, publisher, nil)

	err := service.UpdateStatus(context.Background(), "alice", 1, "Terminated/Completed")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(publisher.published) != 1 || publisher.published[0] != messaging.EventClientStatusChanged {
		t.Errorf("Expected client.status_changed event, got: %v", publisher.published)
	}
}

func TestUpdateStatus_NoEventWhenUnchanged(t *testing.T) {
	mockRepo := &mockRepository{
		updateStatusFunc: func(therapistID string, id int64, status string) (string, error) {
			return "Active", nil
		},
	}
	publisher := &mockPublisher{}
	service := NewService(mockRepo, publisher, nil)

	if err := service.UpdateStatus(context.Background(), "alice", 1, "Active"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Errorf("Expected no events for unchanged status, got: %v", publisher.published)
	}
}

func TestUpdateStatus_Invalid(t *testing.T) {
	service := NewService(&mockRepository{}, &mockPublisher{}, nil)

	if err := service.UpdateStatus(context.Background(), "alice", 1, "Archived"); err != ErrInvalidStatus {
		t.Errorf("Expected ErrInvalidStatus, got: %v", err)
	}
}

func TestDeleteClient_PublishesEvent(t *testing.T) {
	mockRepo := &mockRepository{
		deleteFunc: func(therapistID string, id int64) error { return nil },
	}
	publisher := &mockPublisher{}
	service := NewService(mockRepo, publisher, nil)

	if err := service.Delete(context.Background(), "alice", 7); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(publisher.published) != 1 || publisher.published[0] != messaging.EventClientDeleted {
		t.Errorf("Expected client.deleted event, got: %v", publisher.published)
	}
}

func TestDeleteClient_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		deleteFunc: func(therapistID string, id int64) error { return ErrClientNotFound },
	}
	publisher := &mockPublisher{}
	service := NewService(mockRepo, publisher, nil)

	if err := service.Delete(context.Background(), "alice", 7); err != ErrClientNotFound {
		t.Errorf("Expected ErrClientNotFound, got: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Errorf("Expected no events on failed delete, got: %v", publisher.published)
	}
}

func TestAddDiagnosticEntry_Validation(t *testing.T) {
	service := NewService(&mockRepository{}, &mockPublisher{}, nil)

	_, err := service.AddDiagnosticEntry(context.Background(), "alice", 1, CreateDiagnosticRequest{DiagnosisCode: "F41.1"})
	if err != ErrMissingDiagnosis {
		t.Errorf("Expected ErrMissingDiagnosis, got: %v", err)
	}
}

func TestAddDiagnosticEntry_DefaultsDate(t *testing.T) {
	var gotDate string
	mockRepo := &mockRepository{
		addDiagnosticFunc: func(therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error) {
			gotDate = req.Date
			return &DiagnosticEntry{ID: 1, ClientID: clientID, Date: req.Date}, nil
		},
	}
	service := NewService(mockRepo, &mockPublisher{}, nil)

	_, err := service.AddDiagnosticEntry(context.Background(), "alice", 1, CreateDiagnosticRequest{
		DiagnosisCode:        "F41.1",
		DiagnosisDescription: "Generalized anxiety disorder",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotDate == "" {
		t.Error("Expected the entry date to default to today")
	}
}
