package models

import (
	"slices"
	"sort"
	"time"
)

// Task represents a single task on the board
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Labels      []string  `json:"labels"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasLabel reports whether the task references the given label ID
func (t *Task) HasLabel(labelID string) bool {
	return slices.Contains(t.Labels, labelID)
}

// Clone returns a deep copy of the task so callers can mutate it freely
func (t *Task) Clone() *Task {
	c := *t
	c.Labels = slices.Clone(t.Labels)
	if c.Labels == nil {
		c.Labels = []string{}
	}
	return &c
}

// WithoutLabel returns the label IDs of t with labelID removed
func (t *Task) WithoutLabel(labelID string) []string {
	out := make([]string, 0, len(t.Labels))
	for _, id := range t.Labels {
		if id != labelID {
			out = append(out, id)
		}
	}
	return out
}

// SortByOrder sorts tasks ascending by Order.
// Ties are left in an unspecified order.
func SortByOrder(tasks []*Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Order < tasks[j].Order
	})
}

// MaxOrder returns the highest Order among tasks, or -1 for an empty slice.
// The next free position in a partition is MaxOrder(partition)+1.
func MaxOrder(tasks []*Task) int {
	maxOrder := -1
	for _, t := range tasks {
		if t.Order > maxOrder {
			maxOrder = t.Order
		}
	}
	return maxOrder
}

// AllCompleted reports whether tasks is non-empty and every task is done
func AllCompleted(tasks []*Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if t.Status != StatusDone {
			return false
		}
	}
	return true
}

// CloneTasks deep-copies a slice of tasks
func CloneTasks(tasks []*Task) []*Task {
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
