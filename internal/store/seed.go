package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogersnm/teamboard/internal/model"
)

// ErrAlreadySeeded is returned when a sample task name is already taken.
var ErrAlreadySeeded = errors.New("sample data already present")

var seedTasks = []struct {
	name     string
	status   model.Status
	priority model.Priority
	progress model.Progress
	days     int
}{
	{"Collect brand assets", model.StatusDone, model.PriorityMedium, model.ProgressOnSchedule, 3},
	{"Draft homepage wireframe", model.StatusInProgress, model.PriorityHigh, model.ProgressAtRisk, 7},
	{"Review copy with legal", model.StatusPending, model.PriorityLow, model.ProgressOnSchedule, 14},
	{"Set up staging deploy", model.StatusTodo, model.PriorityHigh, model.ProgressLate, 10},
}

// Seed creates a sample project owned by ownerID with two extra members and
// one task per status, dated relative to the store clock. Nothing is written
// when any sample task name is already in use.
func (s *Store) Seed(ownerID model.ID) (*model.Project, error) {
	tasks, err := s.tasks()
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		for _, smp := range seedTasks {
			if strings.EqualFold(t.Name, smp.name) {
				return nil, fmt.Errorf("%w: task %q exists", ErrAlreadySeeded, t.Name)
			}
		}
	}
	owner, err := s.GetUser(ownerID)
	if err != nil {
		return nil, err
	}

	p, err := s.CreateProject(ownerID,
		"Website redesign for Q3",
		"Rebuild the marketing site with the new brand guidelines.")
	if err != nil {
		return nil, fmt.Errorf("seeding project: %w", err)
	}

	assignees := []model.ID{owner.ID}
	for _, in := range []MemberInput{
		{Email: "an.nguyen@example.com", Name: "Nguyễn Văn An"},
		{Email: "binh.tran@example.com", Name: "Trần Thị Bình"},
	} {
		u, err := s.AddMemberToProject(p.ID, in)
		if err != nil && u == nil {
			return nil, fmt.Errorf("seeding member %s: %w", in.Email, err)
		}
		assignees = append(assignees, u.ID)
	}

	today := s.now()
	for i, smp := range seedTasks {
		_, err := s.CreateTask(p.ID, model.TaskInput{
			Name:       smp.name,
			AssigneeID: assignees[i%len(assignees)],
			Status:     smp.status,
			AssignDate: today.Format(model.DateLayout),
			DueDate:    today.AddDate(0, 0, smp.days).Format(model.DateLayout),
			Priority:   smp.priority,
			Progress:   smp.progress,
		})
		if err != nil {
			return nil, fmt.Errorf("seeding task %q: %w", smp.name, err)
		}
	}
	return s.GetProject(p.ID)
}
