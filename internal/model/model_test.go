package model

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abookhq/abook/internal/book"
	"github.com/abookhq/abook/internal/logging"
	"github.com/abookhq/abook/internal/storage"
)

func bookContact(name string) book.Contact {
	return book.Contact{Name: name, Phone: "555", Email: name + "@example.com"}
}

func contactNames(m *Model) []string {
	var names []string
	for _, c := range m.Contacts() {
		names = append(names, c.Name)
	}
	return names
}

func newBoundModel(t *testing.T) (*Model, string) {
	t.Helper()
	dir := t.TempDir()
	host := &hostHook{}
	b := NewBinder(dir, storage.NewJSONStorage(), host.setModel, logging.NewNopLogger())
	require.NoError(t, b.Bind(context.Background(), alice()))
	return host.current(), dir
}

func TestModel_AddContactPersists(t *testing.T) {
	m, dir := newBoundModel(t)

	require.NoError(t, m.AddContact(bookContact("carol")))

	saved, err := storage.NewJSONStorage().ReadAddressBook(filepath.Join(dir, "u01.addressbook.json"))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, m.Book.List(), saved.List())
}

func TestModel_FirstSaveClearsSampleFlag(t *testing.T) {
	m, dir := newBoundModel(t)
	require.True(t, m.Prefs.IsSample)

	require.NoError(t, m.AddContact(bookContact("carol")))

	assert.False(t, m.Prefs.IsSample)
	p, err := storage.NewJSONStorage().ReadPrefs(filepath.Join(dir, "u01.prefs.json"))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.False(t, p.IsSample)
}

func TestModel_RemoveContact(t *testing.T) {
	m, _ := newBoundModel(t)
	require.NoError(t, m.AddContact(bookContact("carol")))

	require.NoError(t, m.RemoveContact("carol"))
	assert.NotContains(t, contactNames(m), "carol")

	assert.Error(t, m.RemoveContact("carol"))
}

func TestModel_AddDuplicateDoesNotSave(t *testing.T) {
	m, _ := newBoundModel(t)
	require.NoError(t, m.AddContact(bookContact("carol")))

	err := m.AddContact(bookContact("carol"))
	require.Error(t, err)
}
