package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("backend: sqlite\npage_size: 5\nsearch_debounce: 500ms\n"), 0644)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.BackendKind())
	assert.Equal(t, 5, cfg.PerPage())
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.BackendKind())
	assert.Equal(t, 9, cfg.PerPage())
	assert.Equal(t, 300*time.Millisecond, cfg.Debounce())
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{bad yaml"), 0644)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Backend: "sqlite", PageSize: 12, SearchDebounce: time.Second}

	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_CreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	require.NoError(t, Save(dir, &Config{}))
	_, err := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}

func TestSet(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("backend", "sqlite"))
	require.NoError(t, cfg.Set("page_size", "4"))
	require.NoError(t, cfg.Set("search_debounce", "1s"))

	v, err := cfg.Get("search_debounce")
	require.NoError(t, err)
	assert.Equal(t, "1s", v)
	assert.Equal(t, 4, cfg.PageSize)
}

func TestSet_Invalid(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Set("backend", "postgres"))
	assert.Error(t, cfg.Set("page_size", "0"))
	assert.Error(t, cfg.Set("search_debounce", "soon"))
	assert.Error(t, cfg.Set("colour", "blue"))
	_, err := cfg.Get("colour")
	assert.Error(t, err)
	assert.Equal(t, &Config{}, cfg)
}
