package risk

import (
	"context"
	"log"

	"github.com/TheraTrack/practice-service/internal/messaging"
	"github.com/TheraTrack/practice-service/internal/soap"
	"github.com/TheraTrack/practice-service/internal/telemetry"
)

// NotesSource supplies each client's most recent note.
type NotesSource interface {
	LatestPerClient(ctx context.Context, therapistID string) ([]soap.LatestNote, error)
}

// StatusUpdater changes a client's status. The scanner re-runs after
// an update so the caller sees fresh alerts.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, therapistID string, id int64, status string) error
}

type Service struct {
	notes     NotesSource
	clients   StatusUpdater
	publisher messaging.PublisherInterface
	metrics   *telemetry.Metrics
}

func NewService(notes NotesSource, clients StatusUpdater, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *Service {
	return &Service{notes: notes, clients: clients, publisher: publisher, metrics: metrics}
}

// Scan inspects the latest note of every client and returns an alert
// for each assessment containing a risk keyword. Only the most recent
// note counts: a superseded flag raises nothing.
func (s *Service) Scan(ctx context.Context, therapistID string) ([]Alert, error) {
	latest, err := s.notes.LatestPerClient(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	for _, note := range latest {
		keyword := MatchKeyword(note.Assessment)
		if keyword == "" {
			continue
		}

		alert := Alert{
			ClientID:   note.ClientID,
			ClientName: note.ClientName,
			Status:     note.Status,
			NoteDate:   note.Date,
			Flag:       ExtractFlag(note.Assessment),
			Keyword:    keyword,
		}
		alerts = append(alerts, alert)

		if s.metrics != nil {
			s.metrics.RecordRiskFlag(ctx, keyword)
		}

		event := messaging.RiskFlagRaisedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventRiskFlagRaised),
			Data: messaging.RiskFlagRaisedData{
				ClientID:    note.ClientID,
				TherapistID: therapistID,
				Flag:        alert.Flag,
				NoteDate:    note.Date,
			},
		}
		if err := s.publisher.Publish(ctx, messaging.EventRiskFlagRaised, event); err != nil {
			log.Printf("Warning: failed to publish risk.flag_raised event: %v", err)
		}
	}

	return alerts, nil
}

// UpdateStatusAndRescan applies the status change and returns the
// alert list as it stands afterwards.
func (s *Service) UpdateStatusAndRescan(ctx context.Context, therapistID string, clientID int64, status string) ([]Alert, error) {
	if err := s.clients.UpdateStatus(ctx, therapistID, clientID, status); err != nil {
		return nil, err
	}
	return s.Scan(ctx, therapistID)
}
