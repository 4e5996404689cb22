package plan

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrPlanNotFound   = errors.New("session plan not found")
)
