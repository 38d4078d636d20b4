package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pro6vastgoed/cms-backend/internal/content"
	"github.com/pro6vastgoed/cms-backend/internal/docstore"
)

func renderProject(id string, order int, published bool) content.Project {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return content.Project{
		ID:          id,
		Slug:        id,
		Title:       "Project " + id,
		Location:    "Alkmaar",
		HeroImage:   "/images/" + id + ".jpg",
		Images:      []string{"/images/" + id + "-1.jpg", "/images/" + id + "-2.jpg"},
		Description: "Beschrijving van " + id,
		Sections:    []content.Section{},
		Order:       order,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newTestGenerator(t *testing.T, projects ...content.Project) *Generator {
	t.Helper()
	store := docstore.NewMemory()
	repo := content.NewProjectsRepo(store)
	for _, p := range projects {
		require.NoError(t, repo.Create(context.Background(), p))
	}
	return NewGenerator(repo, content.NewSettingsRepo(store))
}

func TestProjectPageRendersContent(t *testing.T) {
	p := renderProject("dok6", 1, true)
	p.Subtitle = "Alkmaar"
	p.Date = "2024"
	p.FullDescription = "Volledige beschrijving"
	g := newTestGenerator(t, p)

	html, err := g.ProjectPage(context.Background(), "dok6")
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Project dok6 - Pro6</title>")
	assert.Contains(t, html, "Beschrijving van dok6")
	assert.Contains(t, html, "/images/dok6-1.jpg")
	assert.Contains(t, html, "/images/dok6-2.jpg")
	assert.Contains(t, html, "Volledige beschrijving")
	assert.Contains(t, html, "<span>2024</span>")
}

func TestProjectPageUnknownSlug(t *testing.T) {
	g := newTestGenerator(t)
	_, err := g.ProjectPage(context.Background(), "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestProjectPageEscapesAdminContent(t *testing.T) {
	p := renderProject("evil", 1, true)
	p.Title = "<script>alert(1)</script>"
	p.Description = `"><img src=x onerror=alert(2)>`
	g := newTestGenerator(t, p)

	html, err := g.ProjectPage(context.Background(), "evil")
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, "<img src=x onerror=alert(2)>")
}

func TestProjectPageOmitsEmptyOptionalFragments(t *testing.T) {
	p := renderProject("bare", 1, true)
	p.Images = nil
	p.Description = ""
	p.FullDescription = ""
	g := newTestGenerator(t, p)

	html, err := g.ProjectPage(context.Background(), "bare")
	require.NoError(t, err)

	assert.NotContains(t, html, "zoom-gallery")
	assert.NotContains(t, html, "pinned-section")
	assert.NotContains(t, html, "Over dit project")
	// Meta description falls back to the title.
	assert.Contains(t, html, `content="Project bare"`)
}

func TestProjectPageDropsUnsafeImageURLs(t *testing.T) {
	// html/template rewrites URLs it deems unsafe in url() and src contexts
	// to ZgotmplZ; such values are dropped before the template runs so the
	// fragment is omitted like any other empty field.
	p := renderProject("odd", 1, true)
	p.HeroImage = "data:image/png;base64,iVBORw0KGgo="
	p.Images = []string{"javascript:alert(1)", "/images/odd-1.jpg"}
	g := newTestGenerator(t, p)

	html, err := g.ProjectPage(context.Background(), "odd")
	require.NoError(t, err)

	assert.NotContains(t, html, "ZgotmplZ")
	assert.NotContains(t, html, "hero-bg-image")
	assert.NotContains(t, html, "javascript:alert(1)")
	assert.Contains(t, html, "/images/odd-1.jpg")
}

func TestSafeImageURL(t *testing.T) {
	assert.Equal(t, "/images/a.jpg", safeImageURL("/images/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", safeImageURL("https://cdn.example.com/a.jpg"))
	assert.Equal(t, "http://cdn.example.com/a.jpg", safeImageURL("http://cdn.example.com/a.jpg"))

	assert.Empty(t, safeImageURL(""))
	assert.Empty(t, safeImageURL("data:image/png;base64,AAAA"))
	assert.Empty(t, safeImageURL("javascript:alert(1)"))
	assert.Empty(t, safeImageURL("//cdn.example.com/a.jpg"))
}

func TestProjectPageRendersDraftForPreview(t *testing.T) {
	g := newTestGenerator(t, renderProject("draft", 1, false))

	html, err := g.ProjectPage(context.Background(), "draft")
	require.NoError(t, err)
	assert.Contains(t, html, "Project draft")
}

func TestProjectPageUsesSettingsFooter(t *testing.T) {
	p := renderProject("dok6", 1, true)
	store := docstore.NewMemory()
	repo := content.NewProjectsRepo(store)
	require.NoError(t, repo.Create(context.Background(), p))
	settings := content.NewSettingsRepo(store)
	require.NoError(t, settings.Update(context.Background(), map[string]any{
		"siteName": "Pro6 Vastgoed",
		"footer": map[string]any{
			"phone": "06 1234 5678",
			"email": "hallo@pro6vastgoed.nl",
			"address": map[string]any{
				"street": "Nieuwe Straat 1",
				"city":   "1811 AA Alkmaar",
			},
		},
	}))
	g := NewGenerator(repo, settings)

	html, err := g.ProjectPage(context.Background(), "dok6")
	require.NoError(t, err)

	assert.Contains(t, html, "Pro6 Vastgoed")
	assert.Contains(t, html, "Nieuwe Straat 1")
	assert.Contains(t, html, "hallo@pro6vastgoed.nl")
}

func TestProjectPageNextNavigation(t *testing.T) {
	a := renderProject("a", 1, true)
	b := renderProject("b", 2, true)
	c := renderProject("c", 3, true)
	g := newTestGenerator(t, a, b, c)

	html, err := g.ProjectPage(context.Background(), "b")
	require.NoError(t, err)
	assert.Contains(t, html, `href="/projecten/c"`)

	// Last project wraps to the first.
	html, err = g.ProjectPage(context.Background(), "c")
	require.NoError(t, err)
	assert.Contains(t, html, `href="/projecten/a"`)
}

func TestNextProject(t *testing.T) {
	published := []content.Project{
		renderProject("a", 1, true),
		renderProject("b", 2, true),
		renderProject("c", 3, true),
	}

	assert.Equal(t, "b", NextProject(published, "a").Slug)
	assert.Equal(t, "a", NextProject(published, "c").Slug)

	// A draft slug is not in the list: link to the first published entry.
	assert.Equal(t, "a", NextProject(published, "draft").Slug)

	// Single published project: nothing to link to.
	only := published[:1]
	assert.Nil(t, NextProject(only, "a"))
	assert.Nil(t, NextProject(nil, "a"))
}

func TestProjectPageIsCompleteDocument(t *testing.T) {
	g := newTestGenerator(t, renderProject("dok6", 1, true))

	html, err := g.ProjectPage(context.Background(), "dok6")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "</html>")
}
