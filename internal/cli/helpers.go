package cli

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/thenoetrevino/tasklane/internal/models"
	labelservice "github.com/thenoetrevino/tasklane/internal/services/label"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// ErrDataRead marks input that could not be read
var ErrDataRead = errors.New("failed to read input")

// minPrefixLength is the shortest id prefix accepted in place of a full id
const minPrefixLength = 4

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColorHex validates that a color string is in valid hex format #RRGGBB
func ValidateColorHex(color string) error {
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("%w: got %q", labelservice.ErrInvalidColor, color)
	}
	return nil
}

// ParseStatus maps a status flag value to a Status. Common spellings of
// "inProgress" are accepted.
func ParseStatus(raw string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "todo":
		return models.StatusTodo, nil
	case "inprogress", "in-progress", "in_progress", "doing":
		return models.StatusInProgress, nil
	case "done":
		return models.StatusDone, nil
	}
	return "", fmt.Errorf("%w: got %q", taskservice.ErrInvalidStatus, raw)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDataRead, err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// ShortID abbreviates an id for display
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ResolveTaskID finds the task whose id equals ref or uniquely starts with it
func ResolveTaskID(tasks []*models.Task, ref string) (string, error) {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID("task", ids, ref)
}

// ResolveLabelID finds a label by id, unique id prefix, or case-insensitive name
func ResolveLabelID(labels []*models.Label, ref string) (string, error) {
	for _, l := range labels {
		if strings.EqualFold(l.Name, ref) {
			return l.ID, nil
		}
	}
	ids := make([]string, len(labels))
	for i, l := range labels {
		ids[i] = l.ID
	}
	return resolveID("label", ids, ref)
}

func resolveID(kind string, ids []string, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &UsageError{Msg: kind + " id is required"}
	}

	var matches []string
	for _, id := range ids {
		if id == ref {
			return id, nil
		}
		if len(ref) >= minPrefixLength && strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Kind: kind, Ref: ref}
	case 1:
		return matches[0], nil
	}
	return "", &UsageError{Msg: fmt.Sprintf("%s id %q is ambiguous (%d matches)", kind, ref, len(matches))}
}
