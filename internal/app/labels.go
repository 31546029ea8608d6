package app

import (
	"context"

	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
)

// CreateLabel creates a label and adds it to the cache
func (a *App) CreateLabel(ctx context.Context, req labelservice.CreateLabelRequest) (*models.Label, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	label, err := a.LabelService.CreateLabel(ctx, req)
	if err != nil {
		return nil, a.fail(OpCreateLabel, err)
	}

	a.labels = append(a.labels, label.Clone())
	a.succeed(OpCreateLabel)
	return label, nil
}

// UpdateLabel replaces a label and its cached copy
func (a *App) UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	updated, err := a.LabelService.UpdateLabel(ctx, label)
	if err != nil {
		return nil, a.fail(OpUpdateLabel, err)
	}

	for i, l := range a.labels {
		if l.ID == updated.ID {
			a.labels[i] = updated.Clone()
		}
	}
	a.succeed(OpUpdateLabel)
	return updated, nil
}

// RemoveLabel deletes a label, strips it from every task, and mirrors both
// changes in the cache. A label filter on the removed label is reset.
func (a *App) RemoveLabel(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	rewritten, err := a.LabelService.DeleteLabel(ctx, id)
	if err != nil {
		return a.fail(OpDeleteLabel, err)
	}

	kept := a.labels[:0]
	for _, l := range a.labels {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	a.labels = kept

	for _, t := range rewritten {
		a.replaceCached(t)
	}
	// Tasks the store no longer indexed under id but the cache still tags
	for i, t := range a.tasks {
		if t.HasLabel(id) {
			stripped := t.Clone()
			stripped.Labels = t.WithoutLabel(id)
			a.tasks[i] = stripped
		}
	}

	if a.labelFilter == id {
		a.labelFilter = LabelFilterAll
	}

	a.succeed(OpDeleteLabel)
	a.refreshCompletion()
	return nil
}
