package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/repofile"
	"github.com/rogersnm/teamboard/internal/store"
	"github.com/spf13/cobra"
)

var errNotLoggedIn = errors.New("not logged in; run: teamboard login")

func readStdin() string {
	info, err := os.Stdin.Stat()
	if err != nil {
		return ""
	}
	// Only read if stdin is explicitly a pipe (not a terminal, not a socket)
	if info.Mode()&os.ModeNamedPipe == 0 && info.Size() == 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return string(data)
}

// confirmDelete asks before destroying label unless --force is set.
func confirmDelete(cmd *cobra.Command, label string) error {
	if force, _ := cmd.Flags().GetBool("force"); force {
		return nil
	}
	var ok bool
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("Delete %s?", label)).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&ok).
		Run(); err != nil {
		return fmt.Errorf("confirmation cancelled (use --force to skip)")
	}
	if !ok {
		return fmt.Errorf("aborted")
	}
	return nil
}

// currentUser returns the logged-in user as currently stored.
func currentUser() (*model.User, error) {
	u, ok, err := sess.CurrentUser()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errNotLoggedIn
	}
	fresh, err := st.GetUser(u.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNotLoggedIn
	}
	return fresh, err
}

// resolveProject returns the project from the flag, the repo-local file, or
// the session's open project.
func resolveProject(cmd *cobra.Command) (model.ID, error) {
	if p, _ := cmd.Flags().GetString("project"); p != "" {
		return model.ParseID(p)
	}
	if cwd, err := os.Getwd(); err == nil {
		if rp, _, _ := repofile.Find(cwd); !rp.IsZero() {
			return rp, nil
		}
	}
	id, ok, err := sess.SelectedProject()
	if err != nil {
		return 0, err
	}
	if ok {
		return id, nil
	}
	return 0, fmt.Errorf("--project is required (or open one with: teamboard project open <id>, or link a repo with: teamboard project link)")
}

// openCurrentProject resolves the project and checks the user may see it.
func openCurrentProject(cmd *cobra.Command) (*model.User, *model.Project, error) {
	u, err := currentUser()
	if err != nil {
		return nil, nil, err
	}
	projectID, err := resolveProject(cmd)
	if err != nil {
		return nil, nil, err
	}
	p, err := st.OpenProject(projectID, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}

// resolveUser accepts a user id or an exact email.
func resolveUser(arg string) (*model.User, error) {
	if id, err := model.ParseID(arg); err == nil {
		return st.GetUser(id)
	}
	return st.FindUserByEmail(arg)
}

func addProjectFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "P", "", "project id (defaults to the linked or open project)")
}
