// Package domain contains the core business types for taskdeck.
package domain

import (
	"strings"
	"time"
)

// DateLayout is the single calendar-date pattern used everywhere:
// CSV files, cell edits, and display.
const DateLayout = "2006-01-02"

// Status represents the workflow status of a task
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

func (s Status) String() string {
	return [...]string{"Not Started", "In Progress", "Completed"}[s]
}

// ParseStatus matches a status display string case-insensitively.
// The second return value reports whether the input was recognized;
// on a miss the first value is StatusNotStarted, the documented
// coercion default for loads.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "not started":
		return StatusNotStarted, true
	case "in progress":
		return StatusInProgress, true
	case "completed":
		return StatusCompleted, true
	}
	return StatusNotStarted, false
}

// Statuses lists all statuses in cycle order for the UI.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// Priority represents task priority
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) String() string {
	return [...]string{"Low", "Medium", "High", "Urgent"}[p]
}

// ParsePriority matches a priority display string case-insensitively.
// On a miss it returns PriorityMedium, the documented coercion default.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	case "urgent":
		return PriorityUrgent, true
	}
	return PriorityMedium, false
}

// Priorities lists all priorities in cycle order for the UI.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// DefaultName is the name given to freshly added tasks.
const DefaultName = "New Task"

// Task represents one tracked task / one logical CSV row.
type Task struct {
	ID           string
	Name         string
	Status       Status
	AssignedUser string
	DueDate      *time.Time // nil means no due date
	Priority     Priority
	Notes        string
}

// NewTask creates a task with the documented defaults. The assigned
// user is resolved by the caller (the host OS user at add time).
func NewTask(id, user string) Task {
	return Task{
		ID:           id,
		Name:         DefaultName,
		Status:       StatusNotStarted,
		AssignedUser: user,
		Priority:     PriorityMedium,
	}
}

// DueDateString formats the due date with DateLayout, or "" when unset.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}
