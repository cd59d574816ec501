// Package account implements the account and session core of abook:
// credential hashing, the durable account directory, and the login session
// that binds a user's data to the host application.
package account

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Account is the persistent record identifying a user. Accounts are
// immutable after creation; mutation means replace.
type Account struct {
	// Username is the unique, case-sensitive identifier the user logs in with.
	Username string

	// Hash is the one-way digest of the user's password.
	Hash PasswordHash

	// UserID is a stable application-assigned identifier used to namespace
	// the per-user data files.
	UserID string
}

// ValidateUsername checks that name is usable as an account key: non-empty,
// printable, and free of anything that collides with accounts-file syntax —
// the record delimiter, surrounding whitespace, and a leading '#' (which
// would make the encoded record look like a comment) — so every username
// survives the accounts file round trip.
func ValidateUsername(name string) error {
	if name == "" {
		return errors.New("username cannot be empty")
	}
	if name != strings.TrimSpace(name) {
		return errors.New("username cannot begin or end with whitespace")
	}
	if name[0] == '#' {
		return errors.New("username cannot begin with '#'")
	}
	for _, r := range name {
		if r == recordDelimiter || !unicode.IsPrint(r) {
			return fmt.Errorf("username contains forbidden character %q", r)
		}
	}
	return nil
}
