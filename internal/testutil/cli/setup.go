// Package cli provides helpers for running tasklane commands in tests
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tasklane/internal/app"
	clipkg "github.com/thenoetrevino/tasklane/internal/cli"
	"github.com/thenoetrevino/tasklane/internal/database"
	"github.com/thenoetrevino/tasklane/internal/testutil"
)

// SetupCLITest creates an in-memory store and a loaded App on top of it.
// Both are closed when the test finishes.
func SetupCLITest(t *testing.T) (*database.SQLiteStore, *app.App) {
	t.Helper()

	store := testutil.SetupTestStore(t)
	application := app.New(store)
	if err := application.Load(context.Background()); err != nil {
		t.Fatalf("Failed to load test app: %v", err)
	}
	t.Cleanup(func() { _ = application.Close() })

	return store, application
}

// ExecuteCLICommand executes a CLI command against testApp and returns
// everything it printed to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	ctx := clipkg.WithApp(context.Background(), testApp)
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(ctx)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}

// Reload re-reads the board from the store so assertions see persisted state
func Reload(t *testing.T, testApp *app.App) {
	t.Helper()
	if err := testApp.Load(context.Background()); err != nil {
		t.Fatalf("Failed to reload app: %v", err)
	}
}
