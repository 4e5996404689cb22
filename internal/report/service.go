package report

import (
	"context"
	"io"

	"github.com/TheraTrack/practice-service/internal/client"
	"github.com/TheraTrack/practice-service/internal/risk"
	"github.com/TheraTrack/practice-service/internal/session"
	"github.com/TheraTrack/practice-service/internal/soap"
)

const recentSessionCount = 5

// SessionSource supplies the session queries the reports run on.
type SessionSource interface {
	Filter(ctx context.Context, therapistID string, f session.Filter) ([]session.FilteredSession, error)
	Recent(ctx context.Context, therapistID string, limit int) ([]session.FilteredSession, error)
	TotalCount(ctx context.Context, therapistID string) (int, error)
}

// ClientSource resolves client names and counts for report headers.
type ClientSource interface {
	GetByID(ctx context.Context, therapistID string, id int64) (*client.Client, error)
	ActiveCount(ctx context.Context, therapistID string) (int, error)
}

// NotesSource supplies SOAP notes for the PDF appendix.
type NotesSource interface {
	ListForClient(ctx context.Context, clientID int64) ([]soap.Note, error)
}

// AlertSource supplies the dashboard's risk alert list.
type AlertSource interface {
	Scan(ctx context.Context, therapistID string) ([]risk.Alert, error)
}

type Service struct {
	sessions SessionSource
	clients  ClientSource
	notes    NotesSource
	alerts   AlertSource
}

func NewService(sessions SessionSource, clients ClientSource, notes NotesSource, alerts AlertSource) *Service {
	return &Service{sessions: sessions, clients: clients, notes: notes, alerts: alerts}
}

// ExportCSV writes the filtered sessions to w as CSV.
func (s *Service) ExportCSV(ctx context.Context, therapistID string, f session.Filter, w io.Writer) error {
	sessions, err := s.sessions.Filter(ctx, therapistID, f)
	if err != nil {
		return err
	}
	return WriteCSV(w, sessions)
}

// ClientReportPDF renders the PDF report for one client.
func (s *Service) ClientReportPDF(ctx context.Context, therapistID string, clientID int64) ([]byte, string, error) {
	c, err := s.clients.GetByID(ctx, therapistID, clientID)
	if err != nil {
		return nil, "", err
	}

	sessions, err := s.sessions.Filter(ctx, therapistID, session.Filter{ClientName: c.Name})
	if err != nil {
		return nil, "", err
	}

	notes, err := s.notes.ListForClient(ctx, clientID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err := BuildPDF(c.Name, sessions, notes)
	if err != nil {
		return nil, "", err
	}

	return pdfBytes, c.Name, nil
}

// GoalFrequency aggregates goal usage over the filtered sessions.
func (s *Service) GoalFrequency(ctx context.Context, therapistID string, f session.Filter) ([]GoalCount, error) {
	sessions, err := s.sessions.Filter(ctx, therapistID, f)
	if err != nil {
		return nil, err
	}
	return GoalFrequency(sessions), nil
}

// Overview assembles the dashboard: counts, recent sessions, and the
// current risk alert list.
func (s *Service) Overview(ctx context.Context, therapistID string) (*Dashboard, error) {
	activeClients, err := s.clients.ActiveCount(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	totalSessions, err := s.sessions.TotalCount(ctx, therapistID)
	if err != nil {
		return nil, err
	}

	recent, err := s.sessions.Recent(ctx, therapistID, recentSessionCount)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []session.FilteredSession{}
	}

	alerts, err := s.alerts.Scan(ctx, therapistID)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []risk.Alert{}
	}

	return &Dashboard{
		ActiveClients:  activeClients,
		TotalSessions:  totalSessions,
		RecentSessions: recent,
		RiskAlerts:     alerts,
	}, nil
}
