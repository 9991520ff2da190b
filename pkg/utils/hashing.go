package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// ComparePasswords reports whether plainPassword matches hashedPassword.
// A malformed hash counts as a mismatch rather than an error.
func ComparePasswords(hashedPassword string, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// VerifyPasswordConfirmation is checked before hashing on every write path
// that changes a password. The confirmation value is never stored or logged.
func VerifyPasswordConfirmation(password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordConfirmation
	}
	return nil
}
