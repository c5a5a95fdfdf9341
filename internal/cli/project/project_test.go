package project

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/folio/internal/app"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/testutil"
	clitest "github.com/thenoetrevino/folio/internal/testutil/cli"
)

// countingProvider returns a fixed description and counts calls
type countingProvider struct {
	calls atomic.Int32
	text  string
	err   error
}

func (p *countingProvider) Generate(context.Context, generation.Request) (string, error) {
	p.calls.Add(1)
	return p.text, p.err
}

func setup(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	return clitest.SetupCLITest(t, opts...)
}

// ============================================================================
// ADD / LIST
// ============================================================================

func TestAddCmd_QuietPrintsID(t *testing.T) {
	a := setup(t)

	output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--title", "Folio", "--technologies", "Go", "--quiet"})
	require.NoError(t, err)

	id := strings.TrimSpace(output)
	p, ok := a.Store.Snapshot().ProjectByID(id)
	require.True(t, ok, "printed ID %q must exist", id)
	assert.Equal(t, "Folio", p.Title)
	assert.Equal(t, "Go", p.Technologies)
	assert.Equal(t, models.DefaultProjectImage, p.ImageURL)
}

func TestAddCmd_JSON(t *testing.T) {
	a := setup(t)

	output, err := clitest.ExecuteCLICommand(t, a, AddCmd(), []string{"--json"})
	require.NoError(t, err)

	result := testutil.ParseEnvelope[models.Project](t, output)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Data.ID)
	assert.Empty(t, result.Data.Title)
}

func TestListCmd(t *testing.T) {
	a := setup(t)
	first := clitest.CreateTestProject(t, a, "One", "Go")
	second := clitest.CreateTestProject(t, a, "Two", "")

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+"\n"+second.ID+"\n", output)

	output, err = clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	var result struct {
		Projects []models.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Projects, 2)
	assert.Equal(t, "Two", result.Projects[1].Title)
}

func TestListCmd_Empty(t *testing.T) {
	a := setup(t)

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No projects found")
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateCmd(t *testing.T) {
	a := setup(t)
	p := clitest.CreateTestProject(t, a, "Folio", "")

	_, err := clitest.ExecuteCLICommand(t, a, UpdateCmd(),
		[]string{"--id", p.ID, "--field", "technologies", "--value", "Go, Redis", "--quiet"})
	require.NoError(t, err)

	got, _ := a.Store.Snapshot().ProjectByID(p.ID)
	assert.Equal(t, "Go, Redis", got.Technologies)
	assert.Equal(t, "Folio", got.Title)
}

func TestUpdateCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     func(id string) []string
		wantExit int
	}{
		{"unknown field", func(id string) []string { return []string{"--id", id, "--field", "stars", "--value", "5", "--json"} }, cli.ExitUsage},
		{"unknown project", func(string) []string { return []string{"--id", "missing", "--field", "title", "--value", "x", "--json"} }, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setup(t)
			p := clitest.CreateTestProject(t, a, "Folio", "Go")
			before := a.Store.Snapshot()

			_, err := clitest.ExecuteCLICommand(t, a, UpdateCmd(), tt.args(p.ID))
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, cli.ExitCode(err))
			assert.Equal(t, before, a.Store.Snapshot())
		})
	}
}

func TestDeleteCmd(t *testing.T) {
	a := setup(t)
	keep := clitest.CreateTestProject(t, a, "Keep", "")
	drop := clitest.CreateTestProject(t, a, "Drop", "")

	_, err := clitest.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id", drop.ID, "--force"})
	require.NoError(t, err)

	projects := a.Store.Snapshot().Projects
	require.Len(t, projects, 1)
	assert.Equal(t, keep.ID, projects[0].ID)
}

func TestDeleteCmd_NotFound(t *testing.T) {
	a := setup(t)

	_, err := clitest.ExecuteCLICommand(t, a, DeleteCmd(), []string{"--id", "ghost", "--force", "--json"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

// ============================================================================
// GENERATE
// ============================================================================

func TestGenerateCmd_GuardSkipsProviderWithoutTechnologies(t *testing.T) {
	provider := &countingProvider{text: "never"}
	a := setup(t, app.WithProvider(provider))
	p := clitest.CreateTestProject(t, a, "Folio", "")

	_, err := clitest.ExecuteCLICommand(t, a, GenerateCmd(), []string{"--id", p.ID, "--json"})
	require.Error(t, err)

	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Zero(t, provider.calls.Load(), "provider must not be invoked")
}

func TestGenerateCmd_Success(t *testing.T) {
	provider := &countingProvider{text: "A terminal portfolio editor."}
	a := setup(t, app.WithProvider(provider))
	p := clitest.CreateTestProject(t, a, "Folio", "Go")

	output, err := clitest.ExecuteCLICommand(t, a, GenerateCmd(), []string{"--id", p.ID, "--quiet"})
	require.NoError(t, err)

	assert.Equal(t, "A terminal portfolio editor.\n", output)
	assert.Equal(t, int32(1), provider.calls.Load())

	// The debounced save was flushed when the command finished
	assert.Zero(t, a.Store.Pending())
	stored := a.Adapter.Load(context.Background())
	got, _ := stored.ProjectByID(p.ID)
	assert.Equal(t, "A terminal portfolio editor.", got.Description)
}

func TestGenerateCmd_ProviderFailure(t *testing.T) {
	provider := &countingProvider{err: &generation.ProviderError{Message: "quota"}}
	a := setup(t, app.WithProvider(provider))
	p := clitest.CreateTestProject(t, a, "Folio", "Go")

	output, err := clitest.ExecuteCLICommand(t, a, GenerateCmd(), []string{"--id", p.ID, "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Contains(t, output, "Please check your API key")
}
