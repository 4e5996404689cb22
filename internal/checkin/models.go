package checkin

// CheckIn records the therapist's own energy and focus ahead of a
// session, both on a 1-10 scale.
type CheckIn struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"client_id"`
	Date         string `json:"date"`
	TherapistID  string `json:"therapist_id"`
	EnergyRating int    `json:"energy_rating"`
	FocusRating  int    `json:"focus_rating"`
	Notes        string `json:"notes,omitempty"`
}

type CreateCheckInRequest struct {
	Date         string `json:"date"`
	EnergyRating int    `json:"energy_rating"`
	FocusRating  int    `json:"focus_rating"`
	Notes        string `json:"notes"`
}
