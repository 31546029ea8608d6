package models

import "fmt"

// Status is the workflow stage a task belongs to.
// Each status is its own ordering partition.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// Statuses lists every status in board display order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus converts a raw string into a Status.
// Matching is exact; "inProgress" is the canonical spelling.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q (must be: todo, inProgress, done)", s)
	}
	return status, nil
}

// Valid reports whether s is one of the three known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the column heading for the status
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Next returns the status to the right of s on the board.
// The last status returns itself.
func (s Status) Next() Status {
	for i, st := range Statuses {
		if st == s && i+1 < len(Statuses) {
			return Statuses[i+1]
		}
	}
	return s
}

// Prev returns the status to the left of s on the board.
// The first status returns itself.
func (s Status) Prev() Status {
	for i, st := range Statuses {
		if st == s && i > 0 {
			return Statuses[i-1]
		}
	}
	return s
}
