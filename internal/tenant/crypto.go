package tenant

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	iterations = 100_000
	keyLength  = 32
)

// hashPassword derives a PBKDF2-SHA256 hash and returns it as "salt$hash".
func hashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(hash), nil
}

// checkPassword reports whether the plaintext password matches the stored
// "salt$hash" value.
func checkPassword(password, stored string) bool {
	saltStr, hashStr, ok := strings.Cut(stored, "$")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltStr)
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(hashStr)
	if err != nil {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(hash, expected) == 1
}
