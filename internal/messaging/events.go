package messaging

import (
	"time"

	"github.com/google/uuid"
)

// Event routing keys as constants
const (
	// Client record events
	EventClientCreated       = "client.created"
	EventClientDeleted       = "client.deleted"
	EventClientStatusChanged = "client.status_changed"

	// Session events
	EventSessionLogged = "session.logged"

	// Risk scanner events
	EventRiskFlagRaised = "risk.flag_raised"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// ClientCreatedEvent represents a client intake event
type ClientCreatedEvent struct {
	BaseEvent
	Data ClientCreatedData `json:"data"`
}

type ClientCreatedData struct {
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	TherapistID string    `json:"therapist_id"`
	SiteID      *int64    `json:"site_id,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClientDeletedEvent represents an irreversible cascading delete
type ClientDeletedEvent struct {
	BaseEvent
	Data ClientDeletedData `json:"data"`
}

type ClientDeletedData struct {
	ClientID    int64     `json:"client_id"`
	TherapistID string    `json:"therapist_id"`
	DeletedAt   time.Time `json:"deleted_at"`
}

// ClientStatusChangedEvent represents a status transition
type ClientStatusChangedEvent struct {
	BaseEvent
	Data ClientStatusChangedData `json:"data"`
}

type ClientStatusChangedData struct {
	ClientID    int64     `json:"client_id"`
	TherapistID string    `json:"therapist_id"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ChangedAt   time.Time `json:"changed_at"`
}

// SessionLoggedEvent represents a newly recorded session
type SessionLoggedEvent struct {
	BaseEvent
	Data SessionLoggedData `json:"data"`
}

type SessionLoggedData struct {
	SessionID     int64    `json:"session_id"`
	ClientID      int64    `json:"client_id"`
	TherapistID   string   `json:"therapist_id"`
	SessionNumber int      `json:"session_number"`
	Rating        int      `json:"rating"`
	Goals         []string `json:"goals,omitempty"`
}

// RiskFlagRaisedEvent represents a flag surfaced by the scanner
type RiskFlagRaisedEvent struct {
	BaseEvent
	Data RiskFlagRaisedData `json:"data"`
}

type RiskFlagRaisedData struct {
	ClientID    int64     `json:"client_id"`
	TherapistID string    `json:"therapist_id"`
	Flag        string    `json:"flag"`
	NoteDate    time.Time `json:"note_date"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		ServiceName: "practice-service",
	}
}
