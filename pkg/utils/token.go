package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken returns an opaque 256-bit random token, hex encoded.
// The token is not self-describing; validity is determined by the stored
// token and expiry on the user record.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
