package content

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrContentNotFound    = errors.New("content not found")
)
