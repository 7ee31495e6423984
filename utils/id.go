package utils

import "github.com/google/uuid"

// NewUserID returns a fresh UUID string for a user record.
func NewUserID() string {
	return uuid.NewString()
}
