package model

import "fmt"

type Status string

const (
	StatusTodo       Status = "To do"
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
	StatusDone       Status = "Done"
)

// Statuses is the fixed bucket order used when grouping tasks.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusPending, StatusDone}

func ValidateStatus(s Status) error {
	for _, v := range Statuses {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid status %q: must be one of To do, In Progress, Pending, Done", s)
}

type Priority string

const (
	PriorityHigh   Priority = "Cao"
	PriorityMedium Priority = "Trung bình"
	PriorityLow    Priority = "Thấp"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders priorities high to low. Unknown priorities rank last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func ValidatePriority(p Priority) error {
	if p.Rank() > 3 {
		return fmt.Errorf("invalid priority %q: must be one of Cao, Trung bình, Thấp", p)
	}
	return nil
}

type Progress string

const (
	ProgressOnSchedule Progress = "Đúng tiến độ"
	ProgressAtRisk     Progress = "Có rủi ro"
	ProgressLate       Progress = "Trễ hạn"
)

var Progresses = []Progress{ProgressOnSchedule, ProgressAtRisk, ProgressLate}

func ValidateProgress(p Progress) error {
	for _, v := range Progresses {
		if p == v {
			return nil
		}
	}
	return fmt.Errorf("invalid progress %q: must be one of Đúng tiến độ, Có rủi ro, Trễ hạn", p)
}
