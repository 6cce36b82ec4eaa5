// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateListingNo produces a human-readable listing number like
// RENT-7G2KQ9. Uniqueness is enforced by the column index; a collision on
// six random characters is rare enough to surface as an insert error.
func GenerateListingNo(prefix string) (string, error) {
	token, err := GenerateRandomString(6)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(token), nil
}
