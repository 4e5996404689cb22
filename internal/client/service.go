package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TheraTrack/practice-service/internal/messaging"
	"github.com/TheraTrack/practice-service/internal/pagination"
	"github.com/TheraTrack/practice-service/internal/telemetry"
)

type Service struct {
	repo      RepositoryInterface
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
}

func NewService(repo RepositoryInterface, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *Service {
	return &Service{repo: repo, publisher: publisher, metrics: metrics}
}

func (s *Service) Create(ctx context.Context, therapistID string, req CreateClientRequest) (*Client, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.Status == "" {
		req.Status = DefaultStatus
	}
	if !IsValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	created, err := s.repo.Create(ctx, therapistID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordClientOperation(ctx, "create")
	}

	event := messaging.ClientCreatedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventClientCreated),
		Data: messaging.ClientCreatedData{
			ClientID:    created.ID,
			Name:        created.Name,
			TherapistID: therapistID,
			SiteID:      created.SiteID,
			Status:      created.Status,
			CreatedAt:   created.CreatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventClientCreated, event); err != nil {
		log.Printf("Warning: failed to publish client.created event: %v", err)
	}

	log.Printf("✓ Client created: %s (id=%d)", created.Name, created.ID)
	return created, nil
}

func (s *Service) List(ctx context.Context, therapistID string, params pagination.Params) ([]Client, pagination.Meta, error) {
	clients, total, err := s.repo.List(ctx, therapistID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return clients, params.MetaFor(total), nil
}

func (s *Service) GetByID(ctx context.Context, therapistID string, id int64) (*Client, error) {
	return s.repo.GetByID(ctx, therapistID, id)
}

func (s *Service) UpdateStatus(ctx context.Context, therapistID string, id int64, status string) error {
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}

	oldStatus, err := s.repo.UpdateStatus(ctx, therapistID, id, status)
	if err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordClientOperation(ctx, "status_update")
	}

	if oldStatus != status {
		event := messaging.ClientStatusChangedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventClientStatusChanged),
			Data: messaging.ClientStatusChangedData{
				ClientID:    id,
				TherapistID: therapistID,
				OldStatus:   oldStatus,
				NewStatus:   status,
				ChangedAt:   time.Now().UTC(),
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventClientStatusChanged, event); err != nil {
			log.Printf("Warning: failed to publish client.status_changed event: %v", err)
		}
	}

	return nil
}

func (s *Service) UpdateHistory(ctx context.Context, therapistID string, id int64, history string) error {
	return s.repo.UpdateHistory(ctx, therapistID, id, history)
}

func (s *Service) Delete(ctx context.Context, therapistID string, id int64) error {
	if err := s.repo.Delete(ctx, therapistID, id); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordClientOperation(ctx, "delete")
	}

	event := messaging.ClientDeletedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventClientDeleted),
		Data: messaging.ClientDeletedData{
			ClientID:    id,
			TherapistID: therapistID,
			DeletedAt:   time.Now().UTC(),
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventClientDeleted, event); err != nil {
		log.Printf("Warning: failed to publish client.deleted event: %v", err)
	}

	log.Printf("✓ Client deleted: id=%d (cascade)", id)
	return nil
}

func (s *Service) AddDiagnosticEntry(ctx context.Context, therapistID string, clientID int64, req CreateDiagnosticRequest) (*DiagnosticEntry, error) {
	if req.DiagnosisCode == "" || req.DiagnosisDescription == "" {
		return nil, ErrMissingDiagnosis
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	return s.repo.AddDiagnosticEntry(ctx, therapistID, clientID, req)
}

func (s *Service) ActiveCount(ctx context.Context, therapistID string) (int, error) {
	return s.repo.ActiveCount(ctx, therapistID)
}

func (s *Service) ListDiagnosticHistory(ctx context.Context, therapistID string, clientID int64) ([]DiagnosticEntry, error) {
	// Ownership check before exposing the timeline.
	if _, err := s.repo.GetByID(ctx, therapistID, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListDiagnosticHistory(ctx, clientID)
}
