package subscription

import "errors"

var (
	ErrValidation = errors.New("validation error")
)
