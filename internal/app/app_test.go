package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/folio/internal/config"
	"github.com/thenoetrevino/folio/internal/export"
	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendFile
	cfg.Storage.FileDir = t.TempDir()
	cfg.Export.Dir = t.TempDir()
	return cfg
}

func TestOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	a, err := Open(ctx, testConfig(t))
	require.NoError(t, err)

	assert.NotNil(t, a.Store)
	assert.NotNil(t, a.Generator)
	assert.Equal(t, models.DefaultSlotKey, a.Adapter.Key())
	assert.Equal(t, models.DefaultPortfolio(), a.Store.Snapshot())

	require.NoError(t, a.Close(ctx))
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Storage.Backend = "tape"

	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestClose_PersistsPendingEdits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Editor.DebounceMS = 60_000

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, a.Store.DispatchDebounced(ctx, mutation.SetField{Field: models.FieldName, Value: "Jane"}))
	require.NoError(t, a.Close(ctx))

	reopened, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close(ctx) }()

	assert.Equal(t, "Jane", reopened.Store.Snapshot().Name)
}

func TestGenerate_UsesInjectedProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	provider := generation.ProviderFunc(func(context.Context, generation.Request) (string, error) {
		return "generated", nil
	})

	a, err := Open(ctx, testConfig(t), WithProvider(provider))
	require.NoError(t, err)
	defer func() { _ = a.Close(ctx) }()

	p := models.NewProject("p1")
	require.NoError(t, a.Store.Dispatch(ctx, mutation.AddProject{ID: p.ID}))
	p.Title, p.Technologies = "Folio", "Go"
	require.NoError(t, a.Store.Dispatch(ctx, mutation.UpdateProject{Project: p}))

	desc, err := a.Generator.Generate(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "generated", desc)

	got, _ := a.Store.Snapshot().ProjectByID("p1")
	assert.Equal(t, "generated", got.Description)
}

func TestExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := Open(ctx, cfg, WithSaver(export.DirSaver{Dir: cfg.Export.Dir}))
	require.NoError(t, err)
	defer func() { _ = a.Close(ctx) }()

	require.NoError(t, a.Store.Dispatch(ctx, mutation.SetField{Field: models.FieldName, Value: "Jane"}))

	jsonPath, err := a.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Export.Dir, models.JSONExportFilename), jsonPath)

	htmlPath, err := a.ExportHTML(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	html, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "© 2026 Jane")
}
