package checkin

import "errors"

var (
	ErrInvalidRating  = errors.New("check-in ratings must be between 1 and 10")
	ErrClientNotFound = errors.New("client not found")
)
