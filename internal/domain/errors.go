package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when registering with an email that is already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers every token decode failure: bad signature,
	// malformed structure, or expiry in the past. Callers must not
	// distinguish between them.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnauthenticated is the single outcome for any session resolution failure.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrStoreUnavailable indicates the database could not be reached or
	// the connection pool was exhausted.
	ErrStoreUnavailable = errors.New("store unavailable")
)
