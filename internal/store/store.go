// Package store implements the users, projects and tasks repositories over a
// kv.Backend. Every mutation reads the whole collection, changes it in memory
// and writes the whole collection back. A Store is meant for one writer at a
// time; concurrent processes sharing a backend overwrite each other.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/rogersnm/teamboard/internal/kv"
	"github.com/rogersnm/teamboard/internal/model"
)

const (
	KeyUsers    = "users"
	KeyProjects = "projects"
	KeyTasks    = "tasks"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyMember   = errors.New("user is already a member of the project")
	ErrOwnerRetained   = errors.New("the project owner cannot be removed")
	ErrAccessDenied    = errors.New("not a member of the project")
	ErrOwnerRoleFixed  = errors.New("the project owner's role cannot be changed")
)

// NotFoundError reports a missing record. It matches ErrNotFound, and
// ErrProjectNotFound when the record is a project.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound || (target == ErrProjectNotFound && e.Entity == "project")
}

func notFound(entity string, id model.ID) error {
	return &NotFoundError{Entity: entity, Key: id.String()}
}

type Store struct {
	kv  kv.Backend
	now func() time.Time
}

func New(b kv.Backend) *Store {
	return &Store{kv: b, now: time.Now}
}

// SetClock replaces the clock used for default dates and date rules.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) Backend() kv.Backend {
	return s.kv
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) today() string {
	return s.now().Format(model.DateLayout)
}

func (s *Store) users() ([]model.User, error) {
	return kv.ReadCollection[model.User](s.kv, KeyUsers)
}

func (s *Store) saveUsers(users []model.User) error {
	return kv.WriteCollection(s.kv, KeyUsers, users)
}

func (s *Store) projects() ([]model.Project, error) {
	return kv.ReadCollection[model.Project](s.kv, KeyProjects)
}

func (s *Store) saveProjects(projects []model.Project) error {
	return kv.WriteCollection(s.kv, KeyProjects, projects)
}

func (s *Store) tasks() ([]model.Task, error) {
	return kv.ReadCollection[model.Task](s.kv, KeyTasks)
}

func (s *Store) saveTasks(tasks []model.Task) error {
	return kv.WriteCollection(s.kv, KeyTasks, tasks)
}

func indexOf[T interface{ GetID() model.ID }](items []T, id model.ID) int {
	for i := range items {
		if items[i].GetID() == id {
			return i
		}
	}
	return -1
}
