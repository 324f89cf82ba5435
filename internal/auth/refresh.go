package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const refreshTokenBytes = 32

// NewRefreshToken returns a 256-bit random token encoded as a 64-character hex
// string. The value is opaque and never derived from user or session data.
func NewRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
