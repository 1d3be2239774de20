package job

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not_found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid_state")
)
