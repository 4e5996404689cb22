package client

import "errors"

var (
	ErrMissingName      = errors.New("client name is required")
	ErrInvalidStatus    = errors.New("invalid client status")
	ErrClientNotFound   = errors.New("client not found")
	ErrMissingDiagnosis = errors.New("diagnosis code and description are required")
)
