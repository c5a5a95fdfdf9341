package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/folio/internal/app"
	"github.com/thenoetrevino/folio/internal/config"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

// SetupCLITest opens an app over a file slot in a temp directory.
// Exports go to their own temp directory. The app is closed when the test ends.
func SetupCLITest(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.FileDir = t.TempDir()
	cfg.Export.Dir = t.TempDir()

	appInstance, err := app.Open(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close(context.Background()) })

	return appInstance
}

// CreateTestProject adds a project with the given title and technologies and returns it
func CreateTestProject(t *testing.T, a *app.App, title, technologies string) models.Project {
	t.Helper()
	ctx := context.Background()

	p := models.NewProject(mutation.NewProjectID())
	if err := a.Store.Dispatch(ctx, mutation.AddProject{ID: p.ID}); err != nil {
		t.Fatalf("Failed to add project: %v", err)
	}

	p.Title = title
	p.Technologies = technologies
	if err := a.Store.Dispatch(ctx, mutation.UpdateProject{Project: p}); err != nil {
		t.Fatalf("Failed to update project: %v", err)
	}
	return p
}
