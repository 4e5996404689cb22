package resources

// Resource is a material (worksheet, reading, link) attached to a
// client's treatment.
type Resource struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"client_id"`
	TherapistID string `json:"therapist_id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type CreateResourceRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}
