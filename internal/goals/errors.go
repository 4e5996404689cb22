package goals

import "errors"

var (
	ErrMissingDescription = errors.New("goal description is required")
	ErrInvalidCategory    = errors.New("invalid goal category")
	ErrTemplateNotFound   = errors.New("goal template not found")
	ErrDuplicateGoal      = errors.New("goal already assigned to client")
	ErrGoalNotFound       = errors.New("client goal not found")
)
