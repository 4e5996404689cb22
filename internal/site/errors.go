package site

import "errors"

var (
	ErrMissingName     = errors.New("site name is required")
	ErrMissingAddress  = errors.New("site address is required")
	ErrInvalidSiteType = errors.New("invalid site type")
	ErrSiteNotFound    = errors.New("site not found")
	ErrSiteInUse       = errors.New("site has clients assigned and cannot be deleted")
)
