package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_IsInvolution(t *testing.T) {
	s := New[string]()
	s.Toggle("a")
	s.Toggle("b")

	require.True(t, s.Has("a"))

	// двойной toggle возвращает множество в исходное состояние
	s.Toggle("a")
	s.Toggle("a")
	assert.True(t, s.Has("a"))
	assert.Equal(t, 2, s.Len())

	s.Toggle("b")
	s.Toggle("b")
	assert.True(t, s.Has("b"))
}

func TestSelectAllAndClear(t *testing.T) {
	s := New[string]()
	ids := []string{"r1", "r2", "r3"}

	s.SelectAll(ids)
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.IsAllSelected(ids))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsAllSelected(ids))
}

func TestIsAllSelected_EmptyCollection(t *testing.T) {
	s := New[string]()
	assert.False(t, s.IsAllSelected(nil), "empty collection is never all-selected")
}

func TestIsAllSelected_DifferentMembership(t *testing.T) {
	s := New[string]()
	s.Toggle("x")
	s.Toggle("y")
	// same size, different members
	assert.False(t, s.IsAllSelected([]string{"x", "z"}))
}

func TestRemoveAll_PrunesDeletedIds(t *testing.T) {
	s := New[string]()
	s.SelectAll([]string{"a", "b", "c"})

	s.RemoveAll([]string{"a", "c", "missing"})

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Has("b"))
	assert.False(t, s.Has("a"))
}

func TestValues(t *testing.T) {
	s := New[int]()
	s.Toggle(1)
	s.Toggle(2)
	assert.ElementsMatch(t, []int{1, 2}, s.Values())
}
