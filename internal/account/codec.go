package account

import (
	"fmt"
	"strings"
)

// recordDelimiter separates fields of one account record. The unit separator
// cannot appear in a valid username (see ValidateUsername), so it never
// collides with field content.
const recordDelimiter = '\x1f'

// CorruptRecordError reports an accounts-file line that could not be decoded.
// Such lines are logged and skipped on load.
type CorruptRecordError struct {
	Line   string
	Reason string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt account record %q: %s", e.Line, e.Reason)
}

// EncodeAccount renders a as a single accounts-file line:
// username, hash hex and user id joined by the record delimiter.
func EncodeAccount(a Account) string {
	return a.Username + string(recordDelimiter) + a.Hash.Hex() + string(recordDelimiter) + a.UserID
}

// DecodeAccount parses one accounts-file line. DecodeAccount is the inverse
// of EncodeAccount: decode(encode(a)) == a for every valid account.
func DecodeAccount(line string) (Account, error) {
	fields := strings.Split(line, string(recordDelimiter))
	if len(fields) != 3 {
		return Account{}, &CorruptRecordError{Line: line, Reason: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
	}

	username, hashHex, userID := fields[0], fields[1], fields[2]

	if err := ValidateUsername(username); err != nil {
		return Account{}, &CorruptRecordError{Line: line, Reason: err.Error()}
	}
	hash, err := ParsePasswordHash(hashHex)
	if err != nil {
		return Account{}, &CorruptRecordError{Line: line, Reason: err.Error()}
	}
	if userID == "" {
		return Account{}, &CorruptRecordError{Line: line, Reason: "empty user id"}
	}

	return Account{Username: username, Hash: hash, UserID: userID}, nil
}

// IsIgnoredLine reports whether the accounts file line carries no record:
// blank lines and '#' comments.
func IsIgnoredLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
