package soap

import (
	"fmt"
	"strings"
	"time"
)

// Note is a stored SOAP note. The four sections are flattened strings;
// structure within them follows the fixed formats produced by Flatten.
type Note struct {
	ID         int64     `json:"id"`
	ClientID   int64     `json:"client_id"`
	Date       time.Time `json:"date"`
	Subjective string    `json:"subjective"`
	Objective  string    `json:"objective"`
	Assessment string    `json:"assessment"`
	Plan       string    `json:"plan"`
}

// CreateNoteRequest carries the structured sections as entered. They
// are flattened into the storage format before insert.
type CreateNoteRequest struct {
	Subjective SubjectiveInput `json:"subjective"`
	Objective  ObjectiveInput  `json:"objective"`
	Assessment AssessmentInput `json:"assessment"`
	Plan       PlanInput       `json:"plan"`
}

type SubjectiveInput struct {
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type ObjectiveInput struct {
	Affect      string `json:"affect"`
	Orientation string `json:"orientation"`
	Appearance  string `json:"appearance"`
	Notes       string `json:"notes"`
}

type AssessmentInput struct {
	Risk     string `json:"risk"`
	Analysis string `json:"analysis"`
}

type PlanInput struct {
	NextSession string `json:"next_session"`
	Plan        string `json:"plan"`
}

// LatestNote is the scanner's view: one row per client, the client's
// most recent note only.
type LatestNote struct {
	ClientID   int64     `json:"client_id"`
	ClientName string    `json:"client_name"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
	Assessment string    `json:"assessment"`
}

// FlattenSubjective renders "Mood: X | Symptoms: a, b\nNotes: ...".
func FlattenSubjective(in SubjectiveInput) string {
	return fmt.Sprintf("Mood: %s | Symptoms: %s\nNotes: %s",
		in.Mood, strings.Join(in.Symptoms, ", "), in.Notes)
}

// FlattenObjective renders "Affect: ... | Orientation: ... | Appearance: ...\nNotes: ...".
func FlattenObjective(in ObjectiveInput) string {
	return fmt.Sprintf("Affect: %s | Orientation: %s | Appearance: %s\nNotes: %s",
		in.Affect, in.Orientation, in.Appearance, in.Notes)
}

// FlattenAssessment renders "Risk: ... | Analysis: ...". The text
// before the first pipe is what the risk scanner inspects.
func FlattenAssessment(in AssessmentInput) string {
	return fmt.Sprintf("Risk: %s | Analysis: %s", in.Risk, in.Analysis)
}

// FlattenPlan renders "Next Session: ...\nPlan: ...".
func FlattenPlan(in PlanInput) string {
	return fmt.Sprintf("Next Session: %s\nPlan: %s", in.NextSession, in.Plan)
}
