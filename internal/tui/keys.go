package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tasklane/internal/config"
)

// keyMap holds the board bindings built from the configured key mappings
type keyMap struct {
	PrevColumn         key.Binding
	NextColumn         key.Binding
	PrevTask           key.Binding
	NextTask           key.Binding
	ViewTask           key.Binding
	DeleteTask         key.Binding
	ShiftTask          key.Binding
	DropNextStage      key.Binding
	DropPrevStage      key.Binding
	CycleStatusFilter  key.Binding
	CycleLabelFilter   key.Binding
	ToggleTheme        key.Binding
	DismissCelebration key.Binding
	Reload             key.Binding
	ShowHelp           key.Binding
	Quit               key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn:         key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "prev column")),
		NextColumn:         key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:           key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "prev task")),
		NextTask:           key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),
		ViewTask:           key.NewBinding(key.WithKeys(km.ViewTask), key.WithHelp(km.ViewTask, "view task")),
		DeleteTask:         key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		ShiftTask:          key.NewBinding(key.WithKeys(km.ShiftTask), key.WithHelp(km.ShiftTask, "move down in column")),
		DropNextStage:      key.NewBinding(key.WithKeys(km.DropNextStage), key.WithHelp(km.DropNextStage, "drop on next column")),
		DropPrevStage:      key.NewBinding(key.WithKeys(km.DropPrevStage), key.WithHelp(km.DropPrevStage, "drop on prev column")),
		CycleStatusFilter:  key.NewBinding(key.WithKeys(km.CycleStatusFilter), key.WithHelp(km.CycleStatusFilter, "status filter")),
		CycleLabelFilter:   key.NewBinding(key.WithKeys(km.CycleLabelFilter), key.WithHelp(km.CycleLabelFilter, "label filter")),
		ToggleTheme:        key.NewBinding(key.WithKeys(km.ToggleTheme), key.WithHelp(km.ToggleTheme, "toggle theme")),
		DismissCelebration: key.NewBinding(key.WithKeys(km.DismissCelebration), key.WithHelp(km.DismissCelebration, "dismiss")),
		Reload:             key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		ShowHelp:           key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:               key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftTask, k.DropNextStage, k.DropPrevStage, k.CycleStatusFilter, k.CycleLabelFilter, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.ViewTask, k.DeleteTask, k.ShiftTask, k.DropNextStage, k.DropPrevStage},
		{k.CycleStatusFilter, k.CycleLabelFilter, k.ToggleTheme, k.DismissCelebration},
		{k.Reload, k.ShowHelp, k.Quit},
	}
}
