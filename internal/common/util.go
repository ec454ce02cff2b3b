// Package common also provides small helpers for working with random
// bytes and secure memory wiping.
package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It returns an error only if the system entropy source fails.
func GenerateRandByteArray(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Useful for removing passwords from memory after use. A nil slice
// is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
