// Package book defines the address-book entity model the working model
// operates on.
package book

import (
	"errors"
	"fmt"
)

// Contact is a single address-book entry.
type Contact struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone,omitempty"`
	Email   string   `json:"email,omitempty"`
	Address string   `json:"address,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// AddressBook is an ordered collection of contacts, unique by name.
type AddressBook struct {
	Contacts []Contact `json:"contacts"`
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{}
}

// Add appends a contact. Names must be non-empty and unique within the book.
func (b *AddressBook) Add(c Contact) error {
	if c.Name == "" {
		return errors.New("contact name cannot be empty")
	}
	for _, existing := range b.Contacts {
		if existing.Name == c.Name {
			return fmt.Errorf("contact %q already exists", c.Name)
		}
	}
	b.Contacts = append(b.Contacts, c)
	return nil
}

// Remove deletes the contact with the given name and reports whether it
// was present.
func (b *AddressBook) Remove(name string) bool {
	for i, c := range b.Contacts {
		if c.Name == name {
			b.Contacts = append(b.Contacts[:i], b.Contacts[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the contacts in insertion order. The slice is a copy; the
// caller may modify it freely.
func (b *AddressBook) List() []Contact {
	out := make([]Contact, len(b.Contacts))
	copy(out, b.Contacts)
	return out
}

// Len returns the number of contacts.
func (b *AddressBook) Len() int { return len(b.Contacts) }
