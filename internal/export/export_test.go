package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/persistence"
)

func renderHTML(t *testing.T, doc models.Portfolio) string {
	t.Helper()
	out, err := ToHTML(doc, 2026)
	require.NoError(t, err)
	return string(out)
}

// ============================================================================
// JSON TESTS
// ============================================================================

func TestToJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.Name = "Jane"
	doc.Projects = []models.Project{models.NewProject("p1")}

	data, err := ToJSON(doc)
	require.NoError(t, err)

	got, err := persistence.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestToJSON_EmptyProjectsIsArray(t *testing.T) {
	t.Parallel()

	data, err := ToJSON(models.Portfolio{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"projects": []`)
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

// ============================================================================
// HTML TESTS
// ============================================================================

func TestToHTML_EmptyDocument(t *testing.T) {
	t.Parallel()

	html := renderHTML(t, models.DefaultPortfolio())

	assert.Contains(t, html, "<title>Personal Portfolio</title>")
	assert.Contains(t, html, `<script src="https://cdn.tailwindcss.com"></script>`)
	assert.Contains(t, html, "@keyframes fadeInUp")
	assert.Contains(t, html, "Your Name")
	assert.Contains(t, html, "Your Professional Title")
	assert.NotContains(t, html, "About Me")
	assert.NotContains(t, html, "My Projects")
	assert.Contains(t, html, "© 2026 Your Name. All rights reserved.")
}

func TestToHTML_NameAndTitleWithoutProjects(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.Name = "Jane"
	doc.Title = "Dev"

	html := renderHTML(t, doc)
	assert.Contains(t, html, "<title>Jane</title>")
	assert.Contains(t, html, "Dev")
	assert.NotContains(t, html, "My Projects")
	assert.NotContains(t, html, "About Me")
}

func TestToHTML_AboutShownForContactOnly(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.GithubURL = "https://github.com/jane"

	html := renderHTML(t, doc)
	assert.Contains(t, html, "About Me")
	assert.Contains(t, html, "Write a compelling biography")
	assert.Contains(t, html, `href="https://github.com/jane"`)
	assert.NotContains(t, html, ">Email<")
	assert.NotContains(t, html, ">LinkedIn<")
}

func TestToHTML_EmailIsMailto(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.Email = "jane@example.com"

	html := renderHTML(t, doc)
	assert.Contains(t, html, `href="mailto:jane@example.com"`)
}

func TestToHTML_ProjectCardFallbacks(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	p := models.NewProject("p1")
	p.GithubLink = "https://github.com/jane/x"
	doc.Projects = []models.Project{p}

	html := renderHTML(t, doc)
	assert.Contains(t, html, "My Projects")
	assert.Contains(t, html, "Untitled Project")
	assert.Contains(t, html, "No technologies listed")
	assert.NotContains(t, html, "Tech: ")
	assert.Contains(t, html, `alt="Project image"`)
	assert.Contains(t, html, `src="https://picsum.photos/600/400"`)
	assert.Contains(t, html, "GitHub Repo")
	assert.NotContains(t, html, "Live Demo")
}

func TestToHTML_ProjectWithTechnologies(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.Projects = []models.Project{{
		ID:           "p1",
		Title:        "Folio",
		Technologies: "Go, SQLite",
		LiveLink:     "https://folio.dev",
	}}

	html := renderHTML(t, doc)
	assert.Contains(t, html, `<span class="font-medium text-blue-600">Tech: </span>`)
	assert.Contains(t, html, "Go, SQLite")
	assert.Contains(t, html, "Live Demo")
	assert.NotContains(t, html, "GitHub Repo")
}

func TestToHTML_EscapesValues(t *testing.T) {
	t.Parallel()

	doc := models.DefaultPortfolio()
	doc.Name = `<script>alert("x")</script>`
	doc.Bio = "Tom & Jerry"

	html := renderHTML(t, doc)
	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Tom &amp; Jerry")
}

// ============================================================================
// SAVER TESTS
// ============================================================================

func TestDirSaver(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	saver := DirSaver{Dir: dir}

	path, err := saver.Save(models.JSONExportFilename, []byte("{}"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "portfolio_data.json"), path)

	_, err = saver.Save(models.JSONExportFilename, []byte(`{"name":"x"}`))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))
}

func TestDirSaver_StripsDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := DirSaver{Dir: dir}.Save("../../portfolio.html", []byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "portfolio.html"), path)
}
