// Package common defines shared sentinel errors and small utilities used
// across abook components. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// Registry errors.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrNotFound          = errors.New("not found")
	ErrBadCredentials    = errors.New("bad credentials")

	// Session errors.
	ErrAlreadyLoggedIn = errors.New("already logged in")
)
