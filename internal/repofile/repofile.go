package repofile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogersnm/teamboard/internal/model"
)

const FileName = ".teamboard-project"

// Find walks up from startDir looking for a .teamboard-project file.
// Returns the project id and the directory containing the file.
// Returns (0, "", nil) if not found.
func Find(startDir string) (projectID model.ID, dir string, err error) {
	dir = startDir
	for {
		id, err := Read(dir)
		if err != nil {
			return 0, "", err
		}
		if !id.IsZero() {
			return id, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return 0, "", nil
		}
		dir = parent
	}
}

func Write(dir string, projectID model.ID) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(projectID.String()+"\n"), 0644)
}

// Read returns (0, nil) if the file does not exist.
func Read(dir string) (model.ID, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	id, err := model.ParseID(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return id, nil
}

// Remove deletes dir/.teamboard-project. A missing file is not an error.
func Remove(dir string) error {
	err := os.Remove(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
