package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// service layer; outward-facing copies carry an empty hash.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
