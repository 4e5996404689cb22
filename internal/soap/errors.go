package soap

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNoteNotFound   = errors.New("note not found")
)
