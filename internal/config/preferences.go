package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/thenoetrevino/tasklane/internal/models"
	"gopkg.in/yaml.v3"
)

// themeKey is the fixed preferences key for the light/dark setting
const themeKey = "theme"

// Preferences is a small key/value settings file kept next to the database
type Preferences struct {
	path string
	mu   sync.Mutex
}

// NewPreferences returns a preferences store backed by the file at path.
// The file is created on first write.
func NewPreferences(path string) *Preferences {
	return &Preferences{path: path}
}

// LoadTheme returns the saved theme. ok is false when nothing valid is saved.
func (p *Preferences) LoadTheme() (theme models.Theme, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.read()
	if err != nil {
		return "", false, err
	}

	raw, found := values[themeKey]
	if !found {
		return "", false, nil
	}
	theme, err = models.ParseTheme(raw)
	if err != nil {
		// A hand-edited value falls back to the default
		return "", false, nil
	}
	return theme, true, nil
}

// SaveTheme stores theme, keeping any other keys in the file
func (p *Preferences) SaveTheme(theme models.Theme) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	values, err := p.read()
	if err != nil {
		return err
	}
	values[themeKey] = string(theme)
	return p.write(values)
}

func (p *Preferences) read() (map[string]string, error) {
	values := map[string]string{}

	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (p *Preferences) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}

	return os.WriteFile(p.path, data, 0o644)
}
