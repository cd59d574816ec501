package account

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// hashHexLen is the width of a SHA-256 digest in lowercase hex characters.
const hashHexLen = 2 * sha256.Size

// PasswordHash is an opaque one-way digest of a password. It can only be
// produced by HashPassword or parsed back from its own hex form, so a
// cleartext password can never end up where a hash is expected.
type PasswordHash struct {
	hex string
}

// HashPassword digests the UTF-8 bytes of cleartext with SHA-256.
// The same cleartext always yields the same hash.
func HashPassword(cleartext string) PasswordHash {
	sum := sha256.Sum256([]byte(cleartext))
	return PasswordHash{hex: hex.EncodeToString(sum[:])}
}

// ParsePasswordHash validates a stored digest: exactly 64 lowercase hex
// characters.
func ParsePasswordHash(s string) (PasswordHash, error) {
	if len(s) != hashHexLen {
		return PasswordHash{}, fmt.Errorf("password hash must be %d hex characters, got %d", hashHexLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return PasswordHash{}, fmt.Errorf("password hash contains non-hex character %q", c)
		}
	}
	return PasswordHash{hex: s}, nil
}

// Hex returns the lowercase hex form of the digest.
func (h PasswordHash) Hex() string { return h.hex }

// IsZero reports whether h was never set.
func (h PasswordHash) IsZero() bool { return h.hex == "" }

// Equal compares two hashes in constant time.
func (h PasswordHash) Equal(other PasswordHash) bool {
	return subtle.ConstantTimeCompare([]byte(h.hex), []byte(other.hex)) == 1
}
