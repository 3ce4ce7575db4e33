package model

import "time"

type Task struct {
	ID          ID       `json:"id" yaml:"id"`
	Name        string   `json:"taskName" yaml:"name"`
	ProjectID   ID       `json:"projectId" yaml:"project"`
	AssigneeID  ID       `json:"assigneeId,omitempty" yaml:"assignee,omitempty"`
	Status      Status   `json:"status" yaml:"status"`
	AssignDate  string   `json:"asignDate" yaml:"start"`
	DueDate     string   `json:"dueDate" yaml:"due"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Progress    Progress `json:"progress" yaml:"progress"`
	CreatedDate string   `json:"createdDate,omitempty" yaml:"created,omitempty"`
}

func (t Task) GetID() ID { return t.ID }

// Due parses the due date. ok is false when the date is missing or malformed.
func (t *Task) Due() (time.Time, bool) {
	return ParseDate(t.DueDate)
}

func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// TaskInput carries the raw fields of a new task.
type TaskInput struct {
	Name       string
	AssigneeID ID
	Status     Status
	AssignDate string
	DueDate    string
	Priority   Priority
	Progress   Progress
}

// TaskUpdate holds optional field changes; nil fields are left untouched.
// A task never moves between projects.
type TaskUpdate struct {
	Name       *string
	AssigneeID *ID
	Status     *Status
	AssignDate *string
	DueDate    *string
	Priority   *Priority
	Progress   *Progress
}

// Apply merges the set fields of upd onto t.
func (upd TaskUpdate) Apply(t *Task) {
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.AssigneeID != nil {
		t.AssigneeID = *upd.AssigneeID
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.AssignDate != nil {
		t.AssignDate = *upd.AssignDate
	}
	if upd.DueDate != nil {
		t.DueDate = *upd.DueDate
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Progress != nil {
		t.Progress = *upd.Progress
	}
}

// IsEmpty reports whether no field is set.
func (upd TaskUpdate) IsEmpty() bool {
	return upd.Name == nil && upd.AssigneeID == nil && upd.Status == nil &&
		upd.AssignDate == nil && upd.DueDate == nil && upd.Priority == nil && upd.Progress == nil
}
