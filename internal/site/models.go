package site

import "time"

// SiteTypes are the locations a practice delivers services from.
var SiteTypes = []string{
	"Office/Clinic",
	"School",
	"Home Visit",
	"Telehealth/Virtual",
	"Other",
}

type Site struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	SiteType    string    `json:"site_type"`
	TherapistID string    `json:"therapist_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateSiteRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	SiteType string `json:"site_type"`
}

func IsValidSiteType(siteType string) bool {
	for _, t := range SiteTypes {
		if t == siteType {
			return true
		}
	}
	return false
}
