package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateTokenKey returns a 40-character hex key from 20 random bytes.
// Keys are opaque bearer credentials; nothing is encoded in them.
func GenerateTokenKey() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
