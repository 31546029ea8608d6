package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Status colors
	Success   string `yaml:"success"`
	ErrorFg   string `yaml:"error_fg"`
	Celebrate string `yaml:"celebrate"`
}

// GetPreset returns the built-in scheme for a theme name ("light" or "dark")
func GetPreset(theme string) *ColorScheme {
	if theme == "light" {
		return Light()
	}
	return Dark()
}

// ApplyDefaults fills in missing color values from base
func (c *ColorScheme) ApplyDefaults(base *ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, base.Accent)
	fill(&c.ColumnBorder, base.ColumnBorder)
	fill(&c.TaskBorder, base.TaskBorder)
	fill(&c.SelectedBorder, base.SelectedBorder)
	fill(&c.Title, base.Title)
	fill(&c.Subtle, base.Subtle)
	fill(&c.Normal, base.Normal)
	fill(&c.Success, base.Success)
	fill(&c.ErrorFg, base.ErrorFg)
	fill(&c.Celebrate, base.Celebrate)
}
