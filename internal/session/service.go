package session

import (
	"context"
	"log"

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

func (s *Service) Create(ctx context.Context, therapistID string, req CreateSessionRequest) (*Session, error) {
	if req.Date == "" {
		return nil, ErrMissingDate
	}
	if req.Rating < 1 || req.Rating > 10 {
		return nil, ErrInvalidRating
	}

	created, err := s.repo.Create(ctx, therapistID, req)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordSessionOperation(ctx, "create")
	}

	event := messaging.SessionLoggedEvent{
		BaseEvent: messaging.NewBaseEvent(messaging.EventSessionLogged),
		Data: messaging.SessionLoggedData{
			SessionID:     created.ID,
			ClientID:      created.ClientID,
			TherapistID:   therapistID,
			SessionNumber: created.SessionNumber,
			Rating:        created.Rating,
			Goals:         created.Goals,
		},
	}
	if err := s.publisher.Publish(ctx, messaging.EventSessionLogged, event); err != nil {
		log.Printf("Warning: failed to publish session.logged event: %v", err)
	}

	log.Printf("✓ Session logged: client=%d number=%d rating=%d", created.ClientID, created.SessionNumber, created.Rating)
	return created, nil
}

func (s *Service) ListForClient(ctx context.Context, therapistID string, clientID int64, params pagination.Params) ([]Session, pagination.Meta, error) {
	sessions, total, err := s.repo.ListForClient(ctx, therapistID, clientID, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return sessions, params.MetaFor(total), nil
}

func (s *Service) Recent(ctx context.Context, therapistID string, limit int) ([]FilteredSession, error) {
	return s.repo.Recent(ctx, therapistID, limit)
}

func (s *Service) Filter(ctx context.Context, therapistID string, f Filter) ([]FilteredSession, error) {
	return s.repo.Filter(ctx, therapistID, f)
}

func (s *Service) TotalCount(ctx context.Context, therapistID string) (int, error) {
	return s.repo.TotalCount(ctx, therapistID)
}
