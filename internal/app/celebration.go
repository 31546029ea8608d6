package app

import (
	"time"

	"github.com/thenoetrevino/tasklane/internal/models"
)

// AllTasksCompleted reports whether the board was last seen, unfiltered,
// with at least one task and every task done
func (a *App) AllTasksCompleted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allCompleted
}

// Celebrating reports whether the one-shot celebration is raised
func (a *App) Celebrating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.celebrating
}

// CelebrationTimeout returns how long a celebration stays raised
func (a *App) CelebrationTimeout() time.Duration {
	return a.celebrationTimeout
}

// DismissCelebration lowers the celebration flag
func (a *App) DismissCelebration() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.celebrating = false
	a.stopCelebrationTimer()
}

// refreshCompletion re-derives allCompleted while both filters are "all"
// and raises the celebration on a false to true transition. Callers hold a.mu.
func (a *App) refreshCompletion() {
	if !a.filtersCleared() {
		return
	}

	completed := models.AllCompleted(a.tasks)
	if completed && !a.allCompleted {
		a.raiseCelebration()
	}
	a.allCompleted = completed
}

// raiseCelebration sets the flag and arms the auto-hide timer. Callers hold a.mu.
func (a *App) raiseCelebration() {
	a.celebrating = true
	a.metrics.IncCelebrations()
	a.logger.Info("all tasks completed")

	a.stopCelebrationTimer()
	if a.celebrationTimeout <= 0 {
		return
	}

	a.celebrationSeq++
	seq := a.celebrationSeq
	a.celebrationTimer = time.AfterFunc(a.celebrationTimeout, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		// A newer celebration owns the flag
		if seq == a.celebrationSeq {
			a.celebrating = false
			a.celebrationTimer = nil
		}
	})
}

// stopCelebrationTimer cancels a pending auto-hide. Callers hold a.mu.
func (a *App) stopCelebrationTimer() {
	if a.celebrationTimer != nil {
		a.celebrationTimer.Stop()
		a.celebrationTimer = nil
	}
	a.celebrationSeq++
}
