package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/folio/internal/adapter/driving/web/viewmodel"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestHero_FallsBackWithoutProfile(t *testing.T) {
	html := render(t, Hero("Octo Folio", "octocat", "https://github.com/octocat", nil))

	assert.Contains(t, html, "<h1>Octo Folio</h1>")
	assert.Contains(t, html, `href="https://github.com/octocat"`)
	assert.NotContains(t, html, "avatar")
}

func TestHero_RendersProfile(t *testing.T) {
	profile := &vm.ProfileViewModel{
		DisplayName: "The Octocat",
		AvatarURL:   "https://avatars.example.com/u/1",
		URL:         "https://github.com/octocat",
		Bio:         "Tentacles & code",
		PublicRepos: 8,
		Followers:   42,
	}

	html := render(t, Hero("Octo Folio", "octocat", "https://github.com/octocat", profile))

	assert.Contains(t, html, "<h1>The Octocat</h1>")
	assert.Contains(t, html, "Tentacles &amp; code")
	assert.Contains(t, html, "<li>8 public repositories</li>")
	assert.Contains(t, html, "<li>42 followers</li>")
	assert.NotContains(t, html, "On GitHub since")
}

func TestProjectGrid_LoadingPollsWithQuery(t *testing.T) {
	grid := vm.ProjectGridViewModel{
		Loading: true,
		Search:  `"quoted"`,
		PollURL: "/app/projects?q=%22quoted%22&sort=name",
	}

	html := render(t, ProjectGrid(grid))

	assert.Contains(t, html, `value="&#34;quoted&#34;"`)
	assert.Contains(t, html, `hx-get="/app/projects?q=%22quoted%22&amp;sort=name"`)
	assert.NotContains(t, html, `class="grid"`)
}

func TestProjectCard_LanguageDotStyle(t *testing.T) {
	html := render(t, projectCard(vm.ProjectCardViewModel{
		Name:          "alpha",
		URL:           "https://github.com/octocat/alpha",
		Language:      "Go",
		LanguageColor: "#00ADD8",
		Stars:         "1.5k",
		Activity:      "warm",
	}))

	assert.Contains(t, html, `style="background-color:#00ADD8;"`)
	assert.Contains(t, html, `data-activity="warm"`)
	assert.Contains(t, html, "★ 1.5k")
}

func TestMarkdownPreview_WritesHTMLUnescaped(t *testing.T) {
	html := render(t, MarkdownPreview("<p><strong>bold</strong> $x$</p>"))

	assert.Equal(t, `<div class="math-preview"><p><strong>bold</strong> $x$</p></div>`, html)
}
