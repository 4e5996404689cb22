package resources

import "errors"

var (
	ErrMissingTitle     = errors.New("resource title is required")
	ErrClientNotFound   = errors.New("client not found")
	ErrResourceNotFound = errors.New("resource not found")
)
