package matching

import "errors"

var (
	ErrNotFound        = errors.New("not_found")
	ErrInvalidLocation = errors.New("invalid_location")
)
