package soap

import "testing"

func TestFlattenSubjective(t *testing.T) {
	got := FlattenSubjective(SubjectiveInput{
		Mood:     "Anxious",
		Symptoms: []string{"restlessness", "poor sleep"},
		Notes:    "Reports a difficult week.",
	})
	want := "Mood: Anxious | Symptoms: restlessness, poor sleep\nNotes: Reports a difficult week."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFlattenObjective(t *testing.T) {
	got := FlattenObjective(ObjectiveInput{
		Affect:      "Flat",
		Orientation: "x4",
		Appearance:  "Well groomed",
		Notes:       "Engaged throughout.",
	})
	want := "Affect: Flat | Orientation: x4 | Appearance: Well groomed\nNotes: Engaged throughout."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFlattenAssessment(t *testing.T) {
	got := FlattenAssessment(AssessmentInput{
		Risk:     "Suicidal Ideation",
		Analysis: "Passive ideation, no plan.",
	})
	want := "Risk: Suicidal Ideation | Analysis: Passive ideation, no plan."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFlattenPlan(t *testing.T) {
	got := FlattenPlan(PlanInput{
		NextSession: "2026-03-01",
		Plan:        "Continue weekly CBT.",
	})
	want := "Next Session: 2026-03-01\nPlan: Continue weekly CBT."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
