package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("Email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized action")
	ErrInvalidInput       = errors.New("invalid input")
)
