package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound      = errors.New("profile not found")
	ErrMissingUserID = errors.New("profile user id required")
)
