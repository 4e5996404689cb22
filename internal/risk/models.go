package risk

import (
	"strings"
	"time"
)

// Keywords that raise a flag when present in a client's latest
// assessment.
var Keywords = []string{
	"Suicidal Ideation",
	"Homicidal Ideation",
	"Self-Harm Risk",
	"Grave Disability",
}

// Alert is a derived risk flag. Alerts are computed on every scan and
// never stored.
type Alert struct {
	ClientID   int64     `json:"client_id"`
	ClientName string    `json:"client_name"`
	Status     string    `json:"status"`
	NoteDate   time.Time `json:"note_date"`
	Flag       string    `json:"flag"`
	Keyword    string    `json:"keyword"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MatchKeyword returns the first risk keyword contained in the
// assessment, or "" when none match.
func MatchKeyword(assessment string) string {
	for _, keyword := range Keywords {
		if strings.Contains(assessment, keyword) {
			return keyword
		}
	}
	return ""
}

// ExtractFlag returns the assessment text before the first pipe, which
// is the risk summary in the flattened note format.
func ExtractFlag(assessment string) string {
	if i := strings.Index(assessment, "|"); i >= 0 {
		return strings.TrimSpace(assessment[:i])
	}
	return strings.TrimSpace(assessment)
}
