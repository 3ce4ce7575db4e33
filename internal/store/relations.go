package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rogersnm/teamboard/internal/id"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/query"
	"github.com/rogersnm/teamboard/internal/validate"
)

// The functions in this file are the only writers of Project.Tasks,
// Project.Members and User.Projects. Each side of a relation is written as
// its own collection, projects first.

// MemberInput identifies the user to add by email. Name is used only when a
// new user has to be created.
type MemberInput struct {
	Email string
	Name  string
	Role  string
}

// AddTaskToProject lists taskID in the project's tasks. Repeated calls are
// no-ops.
func (s *Store) AddTaskToProject(projectID, taskID model.ID) error {
	projects, err := s.projects()
	if err != nil {
		return err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return notFound("project", projectID)
	}
	if projects[i].HasTask(taskID) {
		return nil
	}
	projects[i].Tasks = append(projects[i].Tasks, taskID)
	return s.saveProjects(projects)
}

// RemoveTaskFromProject drops every occurrence of taskID from the project's tasks.
func (s *Store) RemoveTaskFromProject(projectID, taskID model.ID) error {
	projects, err := s.projects()
	if err != nil {
		return err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return notFound("project", projectID)
	}
	before := len(projects[i].Tasks)
	projects[i].Tasks = slices.DeleteFunc(projects[i].Tasks, func(t model.ID) bool { return t == taskID })
	if len(projects[i].Tasks) == before {
		return nil
	}
	return s.saveProjects(projects)
}

// AddMemberToProject finds the user by exact email, creating one when none
// exists, and adds them to the project. The returned user is set even when
// the error is ErrAlreadyMember.
func (s *Store) AddMemberToProject(projectID model.ID, in MemberInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = model.RoleMember
	}
	errs := validate.Member(email, role)
	if role == model.RoleOwner {
		errs.Add("role", "the owner role cannot be granted")
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	projects, err := s.projects()
	if err != nil {
		return nil, err
	}
	pi := indexOf(projects, projectID)
	if pi < 0 {
		return nil, notFound("project", projectID)
	}

	users, err := s.users()
	if err != nil {
		return nil, err
	}
	usersChanged := false
	ui := indexOfEmail(users, email)
	if ui < 0 {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name, _, _ = strings.Cut(email, "@")
		}
		users = append(users, model.User{
			ID:       id.Next(users),
			Name:     name,
			Email:    email,
			Role:     model.RoleMember,
			Projects: []model.ID{projectID},
		})
		ui = len(users) - 1
		usersChanged = true
	} else if !users[ui].InProject(projectID) {
		users[ui].Projects = append(users[ui].Projects, projectID)
		usersChanged = true
	}
	user := users[ui]

	if projects[pi].HasMember(user.ID) {
		if usersChanged {
			if err := s.saveUsers(users); err != nil {
				return nil, err
			}
		}
		return &user, fmt.Errorf("%s: %w", email, ErrAlreadyMember)
	}

	projects[pi].Members = append(projects[pi].Members, model.Member{UserID: user.ID, Role: role})
	if err := s.saveProjects(projects); err != nil {
		return nil, err
	}
	if usersChanged {
		if err := s.saveUsers(users); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// RemoveMemberFromProject drops the user's member entries, except an entry
// holding the owner role, which always stays. ErrOwnerRetained reports that
// such an entry was kept.
func (s *Store) RemoveMemberFromProject(projectID, userID model.ID) error {
	projects, err := s.projects()
	if err != nil {
		return err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return notFound("project", projectID)
	}

	before := len(projects[i].Members)
	projects[i].Members = slices.DeleteFunc(projects[i].Members, func(m model.Member) bool {
		return m.UserID == userID && m.Role != model.RoleOwner
	})
	removed := before - len(projects[i].Members)
	retained := projects[i].HasMember(userID)

	if removed > 0 {
		if err := s.saveProjects(projects); err != nil {
			return err
		}
	}
	if retained {
		return fmt.Errorf("user %d: %w", userID, ErrOwnerRetained)
	}
	if removed == 0 {
		return &NotFoundError{Entity: "member", Key: userID.String()}
	}
	return s.unlinkUserProject(userID, projectID)
}

// UpdateMemberRole changes a member's role within one project.
func (s *Store) UpdateMemberRole(projectID, userID model.ID, role string) error {
	role = strings.TrimSpace(role)
	var errs validate.Errors
	switch role {
	case "":
		errs.Add("role", "role is required")
	case model.RoleOwner:
		errs.Add("role", "the owner role cannot be granted")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	projects, err := s.projects()
	if err != nil {
		return err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return notFound("project", projectID)
	}
	found := false
	for j := range projects[i].Members {
		m := &projects[i].Members[j]
		if m.UserID != userID {
			continue
		}
		if m.Role == model.RoleOwner {
			return ErrOwnerRoleFixed
		}
		m.Role = role
		found = true
	}
	if !found {
		return &NotFoundError{Entity: "member", Key: userID.String()}
	}
	return s.saveProjects(projects)
}

// EnsureOwnerIsMember repairs the project on access: member entries without
// a user are dropped and a missing creator is put back as owner. The project
// is written only when something changed.
func (s *Store) EnsureOwnerIsMember(projectID model.ID) (*model.Project, error) {
	projects, err := s.projects()
	if err != nil {
		return nil, err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return nil, notFound("project", projectID)
	}
	p := &projects[i]

	before := len(p.Members)
	p.Members = slices.DeleteFunc(p.Members, func(m model.Member) bool { return m.UserID.IsZero() })
	changed := len(p.Members) != before

	ownerAdded := false
	if !p.CreatorID.IsZero() && !p.HasMember(p.CreatorID) {
		p.Members = append(p.Members, model.Member{UserID: p.CreatorID, Role: model.RoleOwner})
		changed = true
		ownerAdded = true
	}
	if p.Members == nil {
		p.Members = []model.Member{}
	}
	if p.Tasks == nil {
		p.Tasks = []model.ID{}
	}

	if changed {
		if err := s.saveProjects(projects); err != nil {
			return nil, err
		}
	}
	if ownerAdded {
		if err := s.linkUserProject(p.CreatorID, p.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return p, nil
}

// OpenProject is the access path for a viewer: the owner repair runs before
// the membership check.
func (s *Store) OpenProject(projectID, viewerID model.ID) (*model.Project, error) {
	p, err := s.EnsureOwnerIsMember(projectID)
	if err != nil {
		return nil, err
	}
	if !p.HasMember(viewerID) {
		return nil, fmt.Errorf("project %d: %w", projectID, ErrAccessDenied)
	}
	return p, nil
}

// ProjectMembers resolves the project's member entries to users. Entries
// whose user no longer exists are skipped.
func (s *Store) ProjectMembers(projectID model.ID) ([]query.MemberView, error) {
	p, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	users, err := s.users()
	if err != nil {
		return nil, err
	}
	return query.ResolveMembers(*p, users), nil
}

func (s *Store) linkUserProject(userID, projectID model.ID) error {
	users, err := s.users()
	if err != nil {
		return err
	}
	i := indexOf(users, userID)
	if i < 0 {
		return notFound("user", userID)
	}
	if users[i].InProject(projectID) {
		return nil
	}
	users[i].Projects = append(users[i].Projects, projectID)
	return s.saveUsers(users)
}

// unlinkUserProject is a no-op for unknown users.
func (s *Store) unlinkUserProject(userID, projectID model.ID) error {
	users, err := s.users()
	if err != nil {
		return err
	}
	i := indexOf(users, userID)
	if i < 0 || !users[i].InProject(projectID) {
		return nil
	}
	users[i].Projects = slices.DeleteFunc(users[i].Projects, func(p model.ID) bool { return p == projectID })
	return s.saveUsers(users)
}

// detachUser drops a deleted user's non-owner memberships and assignments.
func (s *Store) detachUser(userID model.ID) error {
	projects, err := s.projects()
	if err != nil {
		return err
	}
	changed := false
	for i := range projects {
		before := len(projects[i].Members)
		projects[i].Members = slices.DeleteFunc(projects[i].Members, func(m model.Member) bool {
			return m.UserID == userID && m.Role != model.RoleOwner
		})
		changed = changed || len(projects[i].Members) != before
	}
	if changed {
		if err := s.saveProjects(projects); err != nil {
			return err
		}
	}

	tasks, err := s.tasks()
	if err != nil {
		return err
	}
	changed = false
	for i := range tasks {
		if tasks[i].AssigneeID == userID {
			tasks[i].AssigneeID = 0
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.saveTasks(tasks)
}

// detachProject deletes a removed project's tasks and drops it from users.
func (s *Store) detachProject(projectID model.ID) error {
	tasks, err := s.tasks()
	if err != nil {
		return err
	}
	before := len(tasks)
	tasks = slices.DeleteFunc(tasks, func(t model.Task) bool { return t.ProjectID == projectID })
	if len(tasks) != before {
		if err := s.saveTasks(tasks); err != nil {
			return err
		}
	}

	users, err := s.users()
	if err != nil {
		return err
	}
	changed := false
	for i := range users {
		if users[i].InProject(projectID) {
			users[i].Projects = slices.DeleteFunc(users[i].Projects, func(p model.ID) bool { return p == projectID })
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.saveUsers(users)
}
