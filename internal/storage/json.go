// Package storage reads and writes the per-user data files: the address book
// and its preferences, both plain JSON. Absent files are reported as nil
// without error; files that exist but do not decode surface as
// *CorruptDataError so callers can degrade to defaults.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abookhq/abook/internal/book"
	"github.com/abookhq/abook/internal/filex"
	"github.com/abookhq/abook/internal/prefs"
)

// CorruptDataError reports a data file that exists but cannot be decoded.
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data file %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// JSONStorage is the stateless JSON file storage for per-user data.
type JSONStorage struct{}

func NewJSONStorage() JSONStorage { return JSONStorage{} }

// ReadAddressBook loads the book at path. Returns (nil, nil) when the file
// does not exist and *CorruptDataError when it cannot be decoded.
func (JSONStorage) ReadAddressBook(path string) (*book.AddressBook, error) {
	var b book.AddressBook
	found, err := readJSON(path, &b)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

// WriteAddressBook atomically saves the book at path.
func (JSONStorage) WriteAddressBook(path string, b *book.AddressBook) error {
	return writeJSON(path, b)
}

// ReadPrefs loads preferences at path. Returns (nil, nil) when the file does
// not exist and *CorruptDataError when it cannot be decoded.
func (JSONStorage) ReadPrefs(path string) (*prefs.Prefs, error) {
	var p prefs.Prefs
	found, err := readJSON(path, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// WritePrefs atomically saves preferences at path.
func (JSONStorage) WritePrefs(path string, p *prefs.Prefs) error {
	return writeJSON(path, p)
}

func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, &CorruptDataError{Path: path, Err: err}
	}
	return true, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	return filex.WriteFileAtomic(path, append(data, '\n'), 0o600)
}
