package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GeneratePasswordHash hashes password with bcrypt, plain password is never persisted
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password - %w", err)
	}
	return string(hash), nil
}

// VerifyPassword returns error if password doesn't produce stored hash
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
