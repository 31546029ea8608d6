package models

// Label represents a named, colored tag that can be applied to tasks
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#3B82F6")
}

// DefaultLabelColor is used when a label is created without a color
const DefaultLabelColor = "#3B82F6"

// DefaultLabelColors are the preset swatches offered when picking a label color
var DefaultLabelColors = []string{
	"#EF4444", // red
	"#F59E0B", // orange
	"#10B981", // green
	"#3B82F6", // blue
	"#6366F1", // indigo
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#6B7280", // gray
}

// Clone returns a copy of the label
func (l *Label) Clone() *Label {
	c := *l
	return &c
}

// FindLabel returns the label with the given ID, or nil
func FindLabel(labels []*Label, id string) *Label {
	for _, l := range labels {
		if l.ID == id {
			return l
		}
	}
	return nil
}
