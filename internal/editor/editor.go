package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rogersnm/teamboard/internal/markdown"
)

func editorCmd() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	return "vi"
}

// Open runs the user's editor on path. The editor value may carry flags,
// e.g. "code --wait".
func Open(path string) error {
	parts := strings.Fields(editorCmd())
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", parts[0], err)
	}
	return nil
}

// EditFrontmatter writes meta to a temporary markdown file, opens it in the
// editor and decodes the saved frontmatter back. Hints are shown as comments.
func EditFrontmatter[T any](meta T, hints ...string) (T, error) {
	var zero T
	data, err := markdown.Marshal(meta, hints...)
	if err != nil {
		return zero, err
	}
	f, err := os.CreateTemp("", "teamboard-*.md")
	if err != nil {
		return zero, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return zero, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return zero, err
	}

	if err := Open(f.Name()); err != nil {
		return zero, err
	}

	edited, err := os.Open(f.Name())
	if err != nil {
		return zero, fmt.Errorf("reading edited file: %w", err)
	}
	defer edited.Close()
	return markdown.Parse[T](edited)
}
