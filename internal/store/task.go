package store

import (
	"errors"
	"time"

	"github.com/rogersnm/teamboard/internal/id"
	"github.com/rogersnm/teamboard/internal/model"
	"github.com/rogersnm/teamboard/internal/validate"
)

type TaskFilter struct {
	ProjectID  model.ID
	AssigneeID model.ID
	Status     model.Status
}

// CreateTask validates and stores a new task in projectID, then lists it in
// the project's tasks.
func (s *Store) CreateTask(projectID model.ID, in model.TaskInput) (*model.Task, error) {
	p, err := s.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusTodo
	}
	t := model.Task{
		ID:          id.Next(tasks),
		Name:        in.Name,
		ProjectID:   projectID,
		AssigneeID:  in.AssigneeID,
		Status:      status,
		AssignDate:  in.AssignDate,
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Progress:    in.Progress,
		CreatedDate: s.now().UTC().Format(time.RFC3339),
	}
	errs := validate.Task(t, tasks, s.now(), true)
	checkAssignee(&errs, p, t.AssigneeID)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	tasks = append(tasks, t)
	if err := s.saveTasks(tasks); err != nil {
		return nil, err
	}
	if err := s.AddTaskToProject(projectID, t.ID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTask(taskID model.ID) (*model.Task, error) {
	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, notFound("task", taskID)
	}
	return &tasks[i], nil
}

func (s *Store) ListTasks(filter TaskFilter) ([]model.Task, error) {
	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}
	out := []model.Task{}
	for _, t := range tasks {
		if !filter.ProjectID.IsZero() && t.ProjectID != filter.ProjectID {
			continue
		}
		if !filter.AssigneeID.IsZero() && t.AssigneeID != filter.AssigneeID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// UpdateTask merges upd onto the stored task and revalidates the result.
func (s *Store) UpdateTask(taskID model.ID, upd model.TaskUpdate) (*model.Task, error) {
	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return nil, notFound("task", taskID)
	}
	t := tasks[i]
	upd.Apply(&t)
	errs := validate.Task(t, tasks, s.now(), false)
	if upd.AssigneeID != nil {
		p, err := s.GetProject(t.ProjectID)
		if err != nil {
			return nil, err
		}
		checkAssignee(&errs, p, t.AssigneeID)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	tasks[i] = t
	if err := s.saveTasks(tasks); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes the task and drops its id from the owning project.
func (s *Store) DeleteTask(taskID model.ID) error {
	tasks, err := s.tasks()
	if err != nil {
		return err
	}
	i := indexOf(tasks, taskID)
	if i < 0 {
		return notFound("task", taskID)
	}
	projectID := tasks[i].ProjectID
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := s.saveTasks(tasks); err != nil {
		return err
	}
	err = s.RemoveTaskFromProject(projectID, taskID)
	if errors.Is(err, ErrProjectNotFound) {
		// orphaned task, nothing to unlink
		return nil
	}
	return err
}

// checkAssignee requires a set assignee to be a member of the project.
func checkAssignee(errs *validate.Errors, p *model.Project, assigneeID model.ID) {
	if !assigneeID.IsZero() && !p.HasMember(assigneeID) {
		errs.Add("assignee", "assignee must be a member of the project")
	}
}
