package domain

import "errors"

var (
	ErrInvalidPostType = errors.New("type must be Open Call or Project Update")
	ErrMissingTitle    = errors.New("title is required")
	ErrMissingContent  = errors.New("content is required")
	ErrUnknownAuthor   = errors.New("author not found")
)
