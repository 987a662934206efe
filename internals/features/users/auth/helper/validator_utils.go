package helpers

import (
	"errors"
	"strings"
)

var ErrCredentialsRequired = errors.New("Email and password are required")

func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

// DefaultDisplayName is the local part of the email.
func DefaultDisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
