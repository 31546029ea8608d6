package config

// KeyMappings defines all configurable board key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Tasks
	ViewTask      string `yaml:"view_task"`
	DeleteTask    string `yaml:"delete_task"`
	ShiftTask     string `yaml:"shift_task"`
	DropNextStage string `yaml:"drop_next_stage"`
	DropPrevStage string `yaml:"drop_prev_stage"`

	// Filters
	CycleStatusFilter string `yaml:"cycle_status_filter"`
	CycleLabelFilter  string `yaml:"cycle_label_filter"`

	// Other
	ToggleTheme        string `yaml:"toggle_theme"`
	DismissCelebration string `yaml:"dismiss_celebration"`
	Reload             string `yaml:"reload"`
	ShowHelp           string `yaml:"show_help"`
	Quit               string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		ViewTask:      "enter",
		DeleteTask:    "d",
		ShiftTask:     "s",
		DropNextStage: "n",
		DropPrevStage: "p",

		CycleStatusFilter: "f",
		CycleLabelFilter:  "g",

		ToggleTheme:        "t",
		DismissCelebration: "x",
		Reload:             "r",
		ShowHelp:           "?",
		Quit:               "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ViewTask, defaults.ViewTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ShiftTask, defaults.ShiftTask)
	fill(&k.DropNextStage, defaults.DropNextStage)
	fill(&k.DropPrevStage, defaults.DropPrevStage)
	fill(&k.CycleStatusFilter, defaults.CycleStatusFilter)
	fill(&k.CycleLabelFilter, defaults.CycleLabelFilter)
	fill(&k.ToggleTheme, defaults.ToggleTheme)
	fill(&k.DismissCelebration, defaults.DismissCelebration)
	fill(&k.Reload, defaults.Reload)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
