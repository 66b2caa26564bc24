package status

import "errors"

var (
	ErrAuthFailed    = errors.New("auth: invalid email or password")
	ErrLoginInFlight = errors.New("auth: login already in progress")
	ErrTimeout       = errors.New("auth: authentication timed out")
	ErrConflict      = errors.New("directory: email already registered")
	ErrNotFound      = errors.New("lookup: record not found")
	ErrInvalidInput  = errors.New("note: content must not be empty")
)
