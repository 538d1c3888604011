package service

import "errors"

// Failure values shared by the domain services. Callers branch with
// errors.Is to turn them into menu diagnostics or HTTP statuses.
var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrValidation       = errors.New("invalid input")
	ErrNoRoomsAvailable = errors.New("no rooms available")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
)
