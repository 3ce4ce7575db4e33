package kv

import (
	"fmt"
	"path/filepath"
)

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Open returns the backend of the given kind rooted at dataDir.
// An empty kind selects the file backend.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case "", KindFile:
		return NewFile(filepath.Join(dataDir, "storage"))
	case KindSQLite:
		return NewSQLite(filepath.Join(dataDir, "teamboard.db"))
	default:
		return nil, fmt.Errorf("unknown backend %q: must be file or sqlite", kind)
	}
}
