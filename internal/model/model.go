// Package model holds the working state for the logged-in user and the
// binder that loads it on login.
package model

import (
	"fmt"

	"github.com/abookhq/abook/internal/book"
	"github.com/abookhq/abook/internal/prefs"
)

// Storage is the persistence surface the model and binder load and save
// through.
type Storage interface {
	ReadAddressBook(path string) (*book.AddressBook, error)
	WriteAddressBook(path string, b *book.AddressBook) error
	ReadPrefs(path string) (*prefs.Prefs, error)
	WritePrefs(path string, p *prefs.Prefs) error
}

// Model is the working model for one logged-in user: their address book,
// their preferences and the paths both persist to. A fresh Model is built on
// every login; it is never shared between users.
type Model struct {
	UserID string
	Book   *book.AddressBook
	Prefs  *prefs.Prefs

	bookPath  string
	prefsPath string
	storage   Storage
}

// AddContact adds a contact and saves the book. Once the user saves their own
// data the book is no longer the pristine sample.
func (m *Model) AddContact(c book.Contact) error {
	if err := m.Book.Add(c); err != nil {
		return err
	}
	return m.save()
}

// RemoveContact deletes a contact by name and saves the book. Removing an
// unknown name is reported without touching the disk.
func (m *Model) RemoveContact(name string) error {
	if !m.Book.Remove(name) {
		return fmt.Errorf("no contact named %q", name)
	}
	return m.save()
}

// Contacts lists the book's contacts in insertion order.
func (m *Model) Contacts() []book.Contact {
	return m.Book.List()
}

func (m *Model) save() error {
	if err := m.storage.WriteAddressBook(m.bookPath, m.Book); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}
	if m.Prefs.IsSample {
		m.Prefs.IsSample = false
		if err := m.storage.WritePrefs(m.prefsPath, m.Prefs); err != nil {
			return fmt.Errorf("save prefs: %w", err)
		}
	}
	return nil
}
