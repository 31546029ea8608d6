package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tasklane/internal/app"
	taskservice "github.com/thenoetrevino/tasklane/internal/services/task"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockRendered struct {
	Name string
}

func (m mockRendered) Render() string {
	return "rendered " + m.Name
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// captureStream redirects *stream while fn runs and returns what was written
func captureStream(t *testing.T, stream **os.File, fn func()) string {
	t.Helper()

	old := *stream
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*stream = w

	fn()

	_ = w.Close()
	*stream = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStream(t, &os.Stdout, func() {
		if err := formatter.Success(mockDataWithID{ID: "abc", Name: "Test"}); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	var result map[string]interface{}
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]interface{})
	if data["Name"] != "Test" || data["ID"] != "abc" {
		t.Errorf("Unexpected data %v", data)
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       interface{}
		wantOutput string
	}{
		{name: "value receiver with ID", data: mockDataWithID{ID: "task-42"}, wantOutput: "task-42"},
		{name: "pointer to value receiver", data: &mockDataWithID{ID: "task-55"}, wantOutput: "task-55"},
		{name: "nil data prints nothing", data: nil, wantOutput: ""},
		{name: "no ID falls back to pretty print", data: "plain", wantOutput: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output := captureStream(t, &os.Stdout, func() {
				if err := formatter.Success(tt.data); err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
			})
			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output '%s', got '%s'", tt.wantOutput, got)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name         string
		data         interface{}
		wantContains string
	}{
		{name: "renderer", data: mockRendered{Name: "card"}, wantContains: "rendered card"},
		{name: "string", data: "hello", wantContains: "hello"},
		{name: "struct fallback", data: mockDataWithoutID{Name: "x", Value: 7}, wantContains: "Value:7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{}
			output := captureStream(t, &os.Stdout, func() {
				_ = formatter.Success(tt.data)
			})
			if !strings.Contains(output, tt.wantContains) {
				t.Errorf("Expected output to contain %q, got %q", tt.wantContains, output)
			}
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStream(t, &os.Stdout, func() {
		_ = formatter.ErrorWithSuggestion("NOT_FOUND", "task not found: abc", "Run 'tasklane task list'")
	})

	var result map[string]interface{}
	if err := sonic.UnmarshalString(output, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]interface{})
	if errData["code"] != "NOT_FOUND" || errData["message"] != "task not found: abc" {
		t.Errorf("Unexpected error payload %v", errData)
	}
	if errData["suggestion"] != "Run 'tasklane task list'" {
		t.Errorf("Expected suggestion, got %v", errData["suggestion"])
	}
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := captureStream(t, &os.Stdout, func() {
		_ = formatter.Error("ERROR", "boom")
	})

	if strings.Contains(output, "suggestion") {
		t.Errorf("Expected no suggestion key, got %s", output)
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}

	var stdout string
	stderr := captureStream(t, &os.Stderr, func() {
		stdout = captureStream(t, &os.Stdout, func() {
			_ = formatter.ErrorWithSuggestion("USAGE_ERROR", "title is required", "Pass --title")
		})
	})

	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "Error: title is required") {
		t.Errorf("Expected error line, got %q", stderr)
	}
	if !strings.Contains(stderr, "Suggestion: Pass --title") {
		t.Errorf("Expected suggestion line, got %q", stderr)
	}
}

func TestDescribeError(t *testing.T) {
	opErr := &app.OperationError{Op: app.OpCreateTask, Err: taskservice.ErrEmptyTitle}
	if got := DescribeError(opErr); got != "failed to create task: task title cannot be empty" {
		t.Errorf("Unexpected message %q", got)
	}

	wrapped := fmt.Errorf("outer: %w", &app.OperationError{Op: app.OpDeleteLabel})
	if got := DescribeError(wrapped); got != "outer: failed to delete label" {
		t.Errorf("Unexpected message %q", got)
	}

	if got := DescribeError(&UsageError{Msg: "status is required"}); got != "status is required" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestReportedError_KeepsKind(t *testing.T) {
	err := &ReportedError{Err: &app.OperationError{Op: app.OpCreateTask, Err: taskservice.ErrEmptyTitle}}

	if err.Error() != "failed to create task" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if code := ExitCode(err); code != ExitValidation {
		t.Errorf("Expected exit code %d, got %d", ExitValidation, code)
	}
	if code := ExitCode(&ReportedError{Err: &NotFoundError{Kind: "task", Ref: "abcd"}}); code != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, code)
	}
}
