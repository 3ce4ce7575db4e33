package repofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogersnm/teamboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, 7))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, model.ID(7), got)
}

func TestRead_Missing(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestRead_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("  12 \n\n"), 0644)

	got, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, model.ID(12), got)
}

func TestRead_Garbage(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, FileName), []byte("AUTH\n"), 0644)

	_, err := Read(dir)
	assert.Error(t, err)
}

func TestFind_CurrentDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, 3))

	id, foundDir, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, model.ID(3), id)
	assert.Equal(t, dir, foundDir)
}

func TestFind_ParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "sub", "deep")
	require.NoError(t, os.MkdirAll(child, 0755))
	require.NoError(t, Write(parent, 3))

	id, foundDir, err := Find(child)
	require.NoError(t, err)
	assert.Equal(t, model.ID(3), id)
	assert.Equal(t, parent, foundDir)
}

func TestFind_NotFound(t *testing.T) {
	id, foundDir, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.True(t, id.IsZero())
	assert.Empty(t, foundDir)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(dir, 3))
	require.NoError(t, Remove(dir))
	require.NoError(t, Remove(dir))

	got, err := Read(dir)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}
