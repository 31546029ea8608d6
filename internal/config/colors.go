package config

import "github.com/thenoetrevino/tasklane/internal/config/colors"

// Colors holds per-theme overrides of the built-in schemes
type Colors struct {
	Light colors.ColorScheme `yaml:"light"`
	Dark  colors.ColorScheme `yaml:"dark"`
}

func (c *Colors) applyDefaults() {
	c.Light.ApplyDefaults(colors.Light())
	c.Dark.ApplyDefaults(colors.Dark())
}

// Scheme returns the color scheme for theme ("light" or "dark")
func (c *Config) Scheme(theme string) colors.ColorScheme {
	if theme == "light" {
		return c.Colors.Light
	}
	return c.Colors.Dark
}
