package files

import "errors"

var (
	ErrMissingFilename = errors.New("filename is required")
	ErrInvalidPayload  = errors.New("file payload is not valid base64")
	ErrFileTooLarge    = errors.New("file exceeds the 2 MiB limit")
	ErrClientNotFound  = errors.New("client not found")
	ErrFileNotFound    = errors.New("file not found")
)
