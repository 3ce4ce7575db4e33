package validate

import (
	"strings"
	"time"

	"github.com/rogersnm/teamboard/internal/model"
)

const (
	taskNameMin = 5
	taskNameMax = 100
)

// Task checks t against the task rules. existing is every stored task and is
// used for the case-insensitive name uniqueness check (t itself is skipped by
// id). The start-date-not-in-the-past rule only applies when isNew is set.
func Task(t model.Task, existing []model.Task, today time.Time, isNew bool) Errors {
	var errs Errors

	if IsEmpty(t.Name) {
		errs.Add("name", "task name is required")
	} else if !LengthBetween(t.Name, taskNameMin, taskNameMax) {
		errs.Add("name", "task name must be 5 to 100 characters")
	}
	if !IsEmpty(t.Name) && duplicateTaskName(t, existing) {
		errs.Add("name", "task name already exists")
	}

	if t.AssigneeID.IsZero() {
		errs.Add("assignee", "assignee is required")
	}

	start, startOK := checkDate(&errs, "start", t.AssignDate)
	due, dueOK := checkDate(&errs, "due", t.DueDate)
	if isNew && startOK && start.Before(dateOnly(today)) {
		errs.Add("start", "start date must be today or later")
	}
	if startOK && dueOK && due.Before(start) {
		errs.Add("due", "due date must not be before the start date")
	}

	if t.Priority == "" {
		errs.Add("priority", "priority is required")
	} else if err := model.ValidatePriority(t.Priority); err != nil {
		errs.Add("priority", err.Error())
	}
	if t.Progress == "" {
		errs.Add("progress", "progress is required")
	} else if err := model.ValidateProgress(t.Progress); err != nil {
		errs.Add("progress", err.Error())
	}
	if err := model.ValidateStatus(t.Status); err != nil {
		errs.Add("status", err.Error())
	}
	return errs
}

func duplicateTaskName(t model.Task, existing []model.Task) bool {
	for _, other := range existing {
		if other.ID != t.ID && strings.EqualFold(other.Name, t.Name) {
			return true
		}
	}
	return false
}

func checkDate(errs *Errors, field, value string) (time.Time, bool) {
	if IsEmpty(value) {
		errs.Add(field, field+" date is required")
		return time.Time{}, false
	}
	d, ok := model.ParseDate(value)
	if !ok {
		errs.Add(field, field+" date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
