package share

import "errors"

var (
	ErrContentNotFound = errors.New("content not found")
	// ErrShareNotFound covers unknown and expired tokens alike so the
	// response never reveals whether a token once existed.
	ErrShareNotFound = errors.New("share link not found or expired")
)
