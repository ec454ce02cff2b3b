// Package cryptox implements the password credential codec: deriving a
// storable one-way credential from a plaintext password, and verifying a
// password against a stored credential without ever recovering the
// plaintext.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/shoplens/shoplens/internal/common"
)

const (
	// saltSize is 128 bits of fresh randomness per credential.
	saltSize = 16
	// iterations is the PBKDF2 work factor.
	iterations = 10000
	// keySize is the derived key length, 256 bits.
	keySize = 32
)

// newSalt is a test seam for the entropy source.
var newSalt = func() ([]byte, error) {
	return common.GenerateRandByteArray(saltSize)
}

// DeriveCredential turns a plaintext password into a storable credential of
// the form "salt_hex:key_hex". Each call draws a fresh salt, so deriving the
// same password twice yields different credentials that both verify.
func DeriveCredential(password []byte) (string, error) {
	salt, err := newSalt()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDerivation, err)
	}
	key := pbkdf2.Key(password, salt, iterations, keySize, sha256.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyCredential recomputes the derivation with the salt parsed from the
// credential and compares in constant time. Malformed credentials verify as
// false; this function never returns an error.
func VerifyCredential(password []byte, credential string) bool {
	saltHex, keyHex, ok := strings.Cut(credential, ":")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != keySize {
		return false
	}
	candidate := pbkdf2.Key(password, salt, iterations, keySize, sha256.New)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}
