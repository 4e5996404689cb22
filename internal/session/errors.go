package session

import "errors"

var (
	ErrMissingDate     = errors.New("session date is required")
	ErrInvalidRating   = errors.New("session rating must be between 1 and 10")
	ErrClientNotFound  = errors.New("client not found")
	ErrSessionNotFound = errors.New("session not found")
)
