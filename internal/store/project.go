package store

import (
	"strings"

	"github.com/rogersnm/teamboard/internal/id"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/validate"
)

// CreateProject stores a new project owned by creatorID and lists it in the
// creator's projects.
func (s *Store) CreateProject(creatorID model.ID, name, description string) (*model.Project, error) {
	if err := validate.Project(name, description).Err(); err != nil {
		return nil, err
	}
	if _, err := s.GetUser(creatorID); err != nil {
		return nil, err
	}

	projects, err := s.projects()
	if err != nil {
		return nil, err
	}
	p := model.Project{
		ID:          id.Next(projects),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Status:      model.ProjectStatusActive,
		CreatedDate: s.today(),
		CreatorID:   creatorID,
		Members:     []model.Member{{UserID: creatorID, Role: model.RoleOwner}},
		Tasks:       []model.ID{},
	}
	projects = append(projects, p)
	if err := s.saveProjects(projects); err != nil {
		return nil, err
	}
	if err := s.linkUserProject(creatorID, p.ID); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProject returns the stored project as is. Use OpenProject for access
// that repairs owner membership first.
func (s *Store) GetProject(projectID model.ID) (*model.Project, error) {
	projects, err := s.projects()
	if err != nil {
		return nil, err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return nil, notFound("project", projectID)
	}
	return &projects[i], nil
}

func (s *Store) ListProjects() ([]model.Project, error) {
	return s.projects()
}

func (s *Store) UpdateProject(projectID model.ID, upd model.ProjectUpdate) (*model.Project, error) {
	projects, err := s.projects()
	if err != nil {
		return nil, err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return nil, notFound("project", projectID)
	}
	p := projects[i]
	if upd.Name != nil {
		p.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Description != nil {
		p.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Name != nil || upd.Description != nil {
		if err := validate.Project(p.Name, p.Description).Err(); err != nil {
			return nil, err
		}
	}
	projects[i] = p
	if err := s.saveProjects(projects); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes the project together with its tasks and drops it
// from every user's project list.
func (s *Store) DeleteProject(projectID model.ID) error {
	projects, err := s.projects()
	if err != nil {
		return err
	}
	i := indexOf(projects, projectID)
	if i < 0 {
		return notFound("project", projectID)
	}
	projects = append(projects[:i], projects[i+1:]...)
	if err := s.saveProjects(projects); err != nil {
		return err
	}
	return s.detachProject(projectID)
}
