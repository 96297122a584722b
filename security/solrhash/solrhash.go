package solrhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultSaltLength matches `openssl rand 32`, which is what Solr
// deployments conventionally use for credential salts.
const DefaultSaltLength = 32

// Config is the single configuration surface for this package.
// The zero value is usable; SaltLength <= 0 falls back to DefaultSaltLength.
type Config struct {
	SaltLength int
}

// DefaultConfig returns the baseline configuration (32-byte salts).
func DefaultConfig() Config {
	return Config{SaltLength: DefaultSaltLength}
}

// GenerateSalt returns length cryptographically secure random bytes.
func GenerateSalt(length int) ([]byte, error) {
	if length <= 0 {
		return nil, ErrSaltLength
	}
	salt := make([]byte, length)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	return salt, nil
}

// Hash hashes password and returns an encoded record.
// Pipeline (fixed by the Solr format):
//
//	digest1 = sha256(salt || utf8(password))
//	digest2 = sha256(digest1)
//	record  = base64(digest2) + " " + base64(salt)
//
// A nil or empty salt means "generate a fresh random one", so records from
// successive calls differ. For a fixed (password, salt) pair the output is
// deterministic.
func (c Config) Hash(password string, salt []byte) (string, error) {
	if len(salt) == 0 {
		n := c.SaltLength
		if n <= 0 {
			n = DefaultSaltLength
		}
		var err error
		salt, err = GenerateSalt(n)
		if err != nil {
			return "", err
		}
	}

	combined := make([]byte, 0, len(salt)+len(password))
	combined = append(combined, salt...)
	combined = append(combined, password...)

	digest1 := sha256.Sum256(combined)
	digest2 := sha256.Sum256(digest1[:])

	b64 := base64.StdEncoding
	return b64.EncodeToString(digest2[:]) + " " + b64.EncodeToString(salt), nil
}

// Verify reports whether password matches record.
//
// The salt is recovered from the record, the full record is recomputed
// with it and compared against the stored one. Any malformed input
// (wrong token count, undecodable salt) is a mismatch, never an error.
// The comparison is constant-time over the record bytes.
func (c Config) Verify(password, record string) bool {
	parts := strings.Split(strings.TrimSpace(record), " ")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}

	recomputed, err := c.Hash(password, salt)
	if err != nil {
		return false
	}

	// Compared against the record as given, not the trimmed form: a record
	// carrying stray whitespace is not the record we would have produced.
	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(record)) == 1
}
