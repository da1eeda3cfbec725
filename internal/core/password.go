package core

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = 64
	saltLen          = 32
)

// HashPassword derives a PBKDF2-SHA512 key from the password under a fresh
// random salt and encodes both as "hex(salt):hex(key)".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derived key from the stored salt and compares
// in constant time. Any malformed stored value verifies as false rather than
// returning an error.
func VerifyPassword(password, stored string) bool {
	salt, expected, ok := splitHash(stored)
	if !ok {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}

func splitHash(stored string) (salt, key []byte, ok bool) {
	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, nil, false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, false
	}
	key, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, false
	}
	return salt, key, true
}
