package session

import (
	"testing"

	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	s := New(kv.NewMemory())

	_, ok, err := s.CurrentUser()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetCurrentUser(model.User{ID: 3, Name: "An", Email: "an@example.com"}))
	u, ok, err := s.CurrentUser()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.ID(3), u.ID)

	require.NoError(t, s.SelectProject(2))
	require.NoError(t, s.ClearCurrentUser())
	_, ok, _ = s.CurrentUser()
	assert.False(t, ok)
	_, ok, _ = s.SelectedProject()
	assert.False(t, ok)
}

func TestCurrentUser_Malformed(t *testing.T) {
	b := kv.NewMemory()
	require.NoError(t, b.Set(KeyCurrentUser, "{oops"))
	_, ok, err := New(b).CurrentUser()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSelectedProject_StoredAsIntegerString(t *testing.T) {
	b := kv.NewMemory()
	s := New(b)
	require.NoError(t, s.SelectProject(12))

	raw, _, err := b.Get(KeySelectedProject)
	require.NoError(t, err)
	assert.Equal(t, "12", raw)

	id, ok, err := s.SelectedProject()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.ID(12), id)
}

func TestSelectedProject_Garbage(t *testing.T) {
	b := kv.NewMemory()
	require.NoError(t, b.Set(KeySelectedProject, "abc"))
	_, ok, err := New(b).SelectedProject()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpanded_DefaultsTrue(t *testing.T) {
	b := kv.NewMemory()
	s := New(b)

	v, err := s.Expanded(model.StatusDone)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, s.SetExpanded(model.StatusDone, false))
	v, err = s.Expanded(model.StatusDone)
	require.NoError(t, err)
	assert.False(t, v)

	raw, ok, err := b.Get("expanded_Done")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", raw)

	v, err = s.Expanded(model.StatusTodo)
	require.NoError(t, err)
	assert.True(t, v)
}
