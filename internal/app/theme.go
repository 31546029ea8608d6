package app

import "github.com/thenoetrevino/tasklane/internal/models"

// ThemeStore persists the light/dark preference
type ThemeStore interface {
	LoadTheme() (theme models.Theme, ok bool, err error)
	SaveTheme(theme models.Theme) error
}

// Theme returns the current theme
func (a *App) Theme() models.Theme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.theme
}

// ToggleTheme switches between light and dark and saves the choice.
// The in-memory theme changes even if saving fails.
func (a *App) ToggleTheme() (models.Theme, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.theme = a.theme.Toggle()
	return a.theme, a.saveTheme()
}

// SetTheme switches to theme and saves the choice
func (a *App) SetTheme(theme models.Theme) error {
	if _, err := models.ParseTheme(string(theme)); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.theme = theme
	return a.saveTheme()
}

// saveTheme writes the current theme. Callers hold a.mu.
func (a *App) saveTheme() error {
	if a.themes == nil {
		return nil
	}
	if err := a.themes.SaveTheme(a.theme); err != nil {
		return a.fail(OpSaveTheme, err)
	}
	a.metrics.ObserveOperation(string(OpSaveTheme), nil)
	return nil
}

// initialTheme picks the saved preference, falling back to fallback
func (a *App) initialTheme(fallback models.Theme) models.Theme {
	if _, err := models.ParseTheme(string(fallback)); err != nil {
		fallback = models.ThemeLight
	}
	if a.themes == nil {
		return fallback
	}

	theme, ok, err := a.themes.LoadTheme()
	if err != nil {
		a.logger.Warn("could not read theme preference", "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return theme
}
