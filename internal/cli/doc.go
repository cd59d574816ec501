// Package cli implements the interactive shell of abook: a small REPL that
// drives registration, login/logout and the contact commands for the
// currently bound working model.
package cli
