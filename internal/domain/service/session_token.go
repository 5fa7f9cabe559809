package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/pkg/errors"
)

// sessionTokenBytes is the entropy of a raw session token. 32 random bytes
// render as a 64-character hex string in the cookie.
const sessionTokenBytes = 32

// NewSessionToken generates a raw session token and its storage hash. The
// raw value goes to the client; only the hash is persisted.
func NewSessionToken() (raw string, hash string, err error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate session token")
	}

	raw = hex.EncodeToString(buf)

	return raw, HashSessionToken(raw), nil
}

// HashSessionToken returns the hex SHA-256 of a raw token, the form under
// which sessions are looked up.
func HashSessionToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
