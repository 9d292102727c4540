package domain

import "errors"

var (
	ErrNotOwner     = errors.New("Not authorized to update this profile")
	ErrNoChanges    = errors.New("No data to update")
	ErrMissingImage = errors.New("image file is required")
	ErrReadOnly     = errors.New("Profiles are read-only while the directory serves demo data")
)
