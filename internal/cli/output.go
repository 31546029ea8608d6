package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tasklane/internal/app"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Renderer is implemented by results with a human-readable form
type Renderer interface {
	Render() string
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			fmt.Println(idGetter.GetID())
			return nil
		}
		if data == nil {
			return nil
		}
	}

	if f.JSON {
		return encodeJSON(os.Stdout, map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return encodeJSON(os.Stdout, map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Failure reports err with the code derived from its kind
func (f *OutputFormatter) Failure(err error) error {
	return f.Error(ErrorCode(err), DescribeError(err))
}

// ReportedError wraps an error that a command has already printed
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// DescribeError returns the user-facing message for err. Facade failures
// keep their fixed message and add the cause.
func DescribeError(err error) string {
	if opErr, ok := app.AsOperationError(err); ok && opErr.Err != nil {
		return opErr.Error() + ": " + opErr.Err.Error()
	}
	return err.Error()
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case nil:
		return nil
	case Renderer:
		fmt.Println(v.Render())
	case string:
		fmt.Println(v)
	default:
		fmt.Printf("%+v\n", data)
	}
	return nil
}

func encodeJSON(w io.Writer, v interface{}) error {
	return sonic.ConfigStd.NewEncoder(w).Encode(v)
}
