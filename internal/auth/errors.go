package auth

import "errors"

var (
	// ErrMissingAPIKey is returned when no credentials accompany the request.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidAPIKey is returned when the presented key is not recognized.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrForbidden is returned when a valid actor targets another user's data.
	ErrForbidden = errors.New("actor may not access this user's data")
)
