package plan

// Plan is a prepared outline for an upcoming session.
type Plan struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"client_id"`
	PlanDate     string `json:"plan_date"`
	Intro        string `json:"intro,omitempty"`
	CheckIn      string `json:"check_in,omitempty"`
	WarmUp       string `json:"warm_up,omitempty"`
	MainActivity string `json:"main_activity,omitempty"`
	Reflection   string `json:"reflection,omitempty"`
	Props        string `json:"props,omitempty"`
	Closing      string `json:"closing,omitempty"`
	Notes        string `json:"notes,omitempty"`
	TherapistID  string `json:"therapist_id"`
}

type CreatePlanRequest struct {
	PlanDate     string `json:"plan_date"`
	Intro        string `json:"intro"`
	CheckIn      string `json:"check_in"`
	WarmUp       string `json:"warm_up"`
	MainActivity string `json:"main_activity"`
	Reflection   string `json:"reflection"`
	Props        string `json:"props"`
	Closing      string `json:"closing"`
	Notes        string `json:"notes"`
}
