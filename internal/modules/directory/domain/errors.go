package domain

import "errors"

var (
	ErrArtistNotFound    = errors.New("artist not found")
	ErrInvalidArtistID   = errors.New("invalid artist id")
	ErrInvalidMedium     = errors.New("invalid medium")
	ErrInvalidExperience = errors.New("invalid experience")
)
