package app

import (
	"fmt"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// StatusFilter selects which status columns are shown
type StatusFilter string

// FilterAll shows every status
const FilterAll StatusFilter = "all"

// LabelFilterAll shows tasks regardless of labels
const LabelFilterAll = "all"

// ParseStatusFilter accepts "all" or a status name
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == string(FilterAll) {
		return FilterAll, nil
	}
	status, err := models.ParseStatus(s)
	if err != nil {
		return "", fmt.Errorf("invalid status filter %q (must be: all, todo, inProgress, done)", s)
	}
	return StatusFilter(status), nil
}

// Shows reports whether the filter lets the status column through
func (f StatusFilter) Shows(status models.Status) bool {
	return f == FilterAll || f == StatusFilter(status)
}

// StatusFilter returns the current status filter
func (a *App) StatusFilter() StatusFilter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statusFilter
}

// LabelFilter returns the current label filter, a label id or "all"
func (a *App) LabelFilter() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.labelFilter
}

// SetStatusFilter changes the status filter
func (a *App) SetStatusFilter(f StatusFilter) error {
	if _, err := ParseStatusFilter(string(f)); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.statusFilter = f
	a.refreshCompletion()
	return nil
}

// SetLabelFilter changes the label filter. An empty id means "all".
func (a *App) SetLabelFilter(labelID string) {
	if labelID == "" {
		labelID = LabelFilterAll
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.labelFilter = labelID
	a.refreshCompletion()
}

// VisibleTasks returns the tasks shown in the status column under the
// current filters, ordered by position
func (a *App) VisibleTasks(status models.Status) []*models.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return visibleTasks(a.tasks, status, a.statusFilter, a.labelFilter)
}

// ColumnCounts returns how many visible tasks each status column holds
func (a *App) ColumnCounts() map[models.Status]int {
	a.mu.Lock()
	defer a.mu.Unlock()

	counts := make(map[models.Status]int, len(models.Statuses))
	for _, s := range models.Statuses {
		counts[s] = len(visibleTasks(a.tasks, s, a.statusFilter, a.labelFilter))
	}
	return counts
}

func visibleTasks(tasks []*models.Task, status models.Status, sf StatusFilter, labelFilter string) []*models.Task {
	out := []*models.Task{}
	if !sf.Shows(status) {
		return out
	}
	for _, t := range tasks {
		if t.Status != status {
			continue
		}
		if labelFilter != LabelFilterAll && !t.HasLabel(labelFilter) {
			continue
		}
		out = append(out, t.Clone())
	}
	models.SortByOrder(out)
	return out
}

// filtersCleared reports whether both filters are "all". Callers hold a.mu.
func (a *App) filtersCleared() bool {
	return a.statusFilter == FilterAll && a.labelFilter == LabelFilterAll
}
