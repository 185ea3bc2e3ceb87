package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionSecretSize is the number of random bytes in a generated session
// secret.
const SessionSecretSize = 32

// NewSessionSecret returns size random bytes hex encoded, so the result can
// be pasted straight into JWT_SECRET.
func NewSessionSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("cryptox: secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
