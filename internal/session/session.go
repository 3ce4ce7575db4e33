// Package session keeps the per-user UI state: who is logged in, which
// project is open, and which status columns are collapsed.
package session

import (
	"log"
	"strconv"

	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/model"
)

const (
	KeyCurrentUser     = "currentUser"
	KeySelectedProject = "selectedProjectId"
	expandedPrefix     = "expanded_"
)

type Session struct {
	kv kv.Backend
}

func New(b kv.Backend) *Session {
	return &Session{kv: b}
}

// CurrentUser returns the logged-in user, if any.
func (s *Session) CurrentUser() (*model.User, bool, error) {
	u, ok, err := kv.ReadValue[model.User](s.kv, KeyCurrentUser)
	if err != nil || !ok {
		return nil, false, err
	}
	return &u, true, nil
}

func (s *Session) SetCurrentUser(u model.User) error {
	return kv.WriteValue(s.kv, KeyCurrentUser, u)
}

// ClearCurrentUser logs out and forgets the selected project.
func (s *Session) ClearCurrentUser() error {
	if err := s.kv.Delete(KeyCurrentUser); err != nil {
		return err
	}
	return s.ClearSelectedProject()
}

// SelectedProject reads the open project id. The value is stored as a bare
// integer string.
func (s *Session) SelectedProject() (model.ID, bool, error) {
	raw, ok, err := s.kv.Get(KeySelectedProject)
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := model.ParseID(raw)
	if err != nil {
		log.Printf("warning: ignoring %s %q: %v", KeySelectedProject, raw, err)
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Session) SelectProject(id model.ID) error {
	return s.kv.Set(KeySelectedProject, id.String())
}

func (s *Session) ClearSelectedProject() error {
	return s.kv.Delete(KeySelectedProject)
}

// Expanded reports whether the status column is expanded. Columns are
// expanded until set otherwise.
func (s *Session) Expanded(status model.Status) (bool, error) {
	raw, ok, err := s.kv.Get(expandedPrefix + string(status))
	if err != nil || !ok {
		return true, err
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true, nil
	}
	return v, nil
}

func (s *Session) SetExpanded(status model.Status, expanded bool) error {
	return s.kv.Set(expandedPrefix+string(status), strconv.FormatBool(expanded))
}
