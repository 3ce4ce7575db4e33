// Package query derives views from in-memory collections. Nothing here
// touches the store or mutates its input.
package query

import (
	"slices"
	"strings"

	"github.com/rogersnm/teamboard/internal/model"
)

// Unassigned is the display name used when a task's assignee cannot be
// resolved.
const Unassigned = "Chưa phân công"

const (
	SortDeadline = "deadline"
	SortPriority = "priority"
)

// Bucket holds the tasks of one status.
type Bucket struct {
	Status model.Status
	Tasks  []model.Task
}

func FilterByProject(tasks []model.Task, projectID model.ID) []model.Task {
	out := []model.Task{}
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// AssigneeName resolves the task's assignee, or returns Unassigned.
func AssigneeName(t model.Task, users []model.User) string {
	if t.AssigneeID.IsZero() {
		return Unassigned
	}
	for _, u := range users {
		if u.ID == t.AssigneeID {
			return u.Name
		}
	}
	return Unassigned
}

// Search keeps tasks whose name or assignee name contains term, ignoring
// case. The term is matched as given, spaces included. An empty term returns
// the input unchanged.
func Search(tasks []model.Task, term string, users []model.User) []model.Task {
	if term == "" {
		return tasks
	}
	term = strings.ToLower(term)
	out := []model.Task{}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(AssigneeName(t, users)), term) {
			out = append(out, t)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Unknown criteria keep the input order.
func Sort(tasks []model.Task, criterion string) []model.Task {
	out := slices.Clone(tasks)
	switch criterion {
	case SortDeadline:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return strings.Compare(a.DueDate, b.DueDate)
		})
	case SortPriority:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		})
	}
	return out
}

// GroupByStatus returns one bucket per status in model.Statuses order.
// Tasks with any other status are dropped.
func GroupByStatus(tasks []model.Task) []Bucket {
	buckets := make([]Bucket, len(model.Statuses))
	for i, s := range model.Statuses {
		buckets[i] = Bucket{Status: s, Tasks: []model.Task{}}
	}
	for _, t := range tasks {
		if i := slices.Index(model.Statuses, t.Status); i >= 0 {
			buckets[i].Tasks = append(buckets[i].Tasks, t)
		}
	}
	return buckets
}

// TaskView runs the board pipeline: project filter, search, sort, grouping.
func TaskView(tasks []model.Task, projectID model.ID, term, criterion string, users []model.User) []Bucket {
	scoped := FilterByProject(tasks, projectID)
	return GroupByStatus(Sort(Search(scoped, term, users), criterion))
}
