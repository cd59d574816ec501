package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBook_AddAndList(t *testing.T) {
	b := New()

	require.NoError(t, b.Add(Contact{Name: "alice", Phone: "123"}))
	require.NoError(t, b.Add(Contact{Name: "bob"}))

	got := b.List()
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Name)
	assert.Equal(t, "bob", got[1].Name)
}

func TestAddressBook_AddRejectsDuplicatesAndEmpty(t *testing.T) {
	b := New()
	require.NoError(t, b.Add(Contact{Name: "alice"}))

	assert.Error(t, b.Add(Contact{Name: "alice", Phone: "999"}))
	assert.Error(t, b.Add(Contact{}))
	assert.Equal(t, 1, b.Len())
}

func TestAddressBook_Remove(t *testing.T) {
	b := New()
	require.NoError(t, b.Add(Contact{Name: "alice"}))
	require.NoError(t, b.Add(Contact{Name: "bob"}))

	assert.True(t, b.Remove("alice"))
	assert.False(t, b.Remove("alice"))
	require.Len(t, b.List(), 1)
	assert.Equal(t, "bob", b.List()[0].Name)
}

func TestAddressBook_ListReturnsCopy(t *testing.T) {
	b := New()
	require.NoError(t, b.Add(Contact{Name: "alice"}))

	got := b.List()
	got[0].Name = "mallory"

	assert.Equal(t, "alice", b.List()[0].Name)
}

func TestSample_NotEmpty(t *testing.T) {
	s := Sample()
	assert.Greater(t, s.Len(), 0)
	for _, c := range s.List() {
		assert.NotEmpty(t, c.Name)
	}
}
