package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor tuned so a single hash takes tens of milliseconds.
const hashCost = 10

// HashPassword returns a salted bcrypt hash of the password. The salt is
// embedded in the output, so verification needs no separate lookup.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A malformed
// or foreign-format hash is a mismatch, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
