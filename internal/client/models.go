package client

import "time"

// Statuses is the canonical client status enumeration. Legacy labels
// from earlier schema revisions are rewritten at startup.
var Statuses = []string{
	"Active",
	"Inactive/On Hold",
	"Terminated/Completed",
	"Terminated/No Show",
}

const DefaultStatus = "Active"

type Client struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DOB         string    `json:"dob,omitempty"`
	Diagnosis   string    `json:"diagnosis,omitempty"`
	History     string    `json:"history,omitempty"`
	Status      string    `json:"status"`
	SiteID      *int64    `json:"site_id,omitempty"`
	TherapistID string    `json:"therapist_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateClientRequest struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	Diagnosis string `json:"diagnosis"`
	History   string `json:"history"`
	Status    string `json:"status"`
	SiteID    *int64 `json:"site_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateHistoryRequest struct {
	History string `json:"history"`
}

// DiagnosticEntry is one row of a client's diagnostic timeline. The
// newest entry also becomes the client's current diagnosis.
type DiagnosticEntry struct {
	ID                   int64  `json:"id"`
	ClientID             int64  `json:"client_id"`
	Date                 string `json:"date"`
	DiagnosisCode        string `json:"diagnosis_code"`
	DiagnosisDescription string `json:"diagnosis_description"`
	Notes                string `json:"notes,omitempty"`
}

type CreateDiagnosticRequest struct {
	Date                 string `json:"date"`
	DiagnosisCode        string `json:"diagnosis_code"`
	DiagnosisDescription string `json:"diagnosis_description"`
	Notes                string `json:"notes"`
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
