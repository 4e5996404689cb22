package goals

// Categories is the fixed template taxonomy. New templates must land in
// one of these.
var Categories = []string{
	"Emotional & Psychological Well-being",
	"Physical Health & Function",
	"Social & Interpersonal Functioning",
	"Cognitive Function & Insight",
}

type Template struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type CreateTemplateRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ClientGoal assigns a template to a client. A client carries each
// template at most once.
type ClientGoal struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	TemplateID  int64  `json:"template_id"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type AssignGoalRequest struct {
	TemplateID int64 `json:"template_id"`
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
