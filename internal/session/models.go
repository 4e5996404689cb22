package session

// Session is one dated contact with a client. Goals worked on during
// the session live in a join table and are carried here as plain
// descriptions.
type Session struct {
	ID            int64    `json:"id"`
	ClientID      int64    `json:"client_id"`
	Date          string   `json:"date"`
	SessionTime   string   `json:"session_time,omitempty"`
	SessionNumber int      `json:"session_number"`
	Rating        int      `json:"rating"`
	ProgressNotes string   `json:"progress_notes,omitempty"`
	TherapistID   string   `json:"therapist_id"`
	Goals         []string `json:"goals"`
}

type CreateSessionRequest struct {
	ClientID      int64    `json:"client_id"`
	Date          string   `json:"date"`
	SessionTime   string   `json:"session_time"`
	Rating        int      `json:"rating"`
	ProgressNotes string   `json:"progress_notes"`
	Goals         []string `json:"goals"`
}

// Filter narrows the analytics view. Zero values mean "no constraint";
// the date range is inclusive on both ends.
type Filter struct {
	ClientName  string `json:"client_name"`
	GoalKeyword string `json:"goal_keyword"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// FilteredSession is a session row joined with its client's name, as
// consumed by the analytics and export views.
type FilteredSession struct {
	ID            int64    `json:"id"`
	ClientID      int64    `json:"client_id"`
	ClientName    string   `json:"client_name"`
	Date          string   `json:"date"`
	SessionTime   string   `json:"session_time,omitempty"`
	SessionNumber int      `json:"session_number"`
	Rating        int      `json:"rating"`
	ProgressNotes string   `json:"progress_notes,omitempty"`
	Goals         []string `json:"goals"`
}
