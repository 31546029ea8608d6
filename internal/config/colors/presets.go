package colors

// Light returns the light scheme (dark ink on a paper background)
func Light() *ColorScheme {
	return &ColorScheme{
		Accent: "#6366F1",

		ColumnBorder:   "#9CA3AF",
		TaskBorder:     "#D1D5DB",
		SelectedBorder: "#3B82F6",

		Title:  "#1F2937",
		Subtle: "#6B7280",
		Normal: "#111827",

		Success:   "#059669",
		ErrorFg:   "#DC2626",
		Celebrate: "#D97706",
	}
}

// Dark returns the dark scheme
func Dark() *ColorScheme {
	return &ColorScheme{
		Accent: "#874BFD",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		Success:   "#5FD75F",
		ErrorFg:   "#FF5F5F",
		Celebrate: "#FFD700",
	}
}
