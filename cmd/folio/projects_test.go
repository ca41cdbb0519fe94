package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/ericfisherdev/folio/internal/adapter/driving/http"
	"github.com/ericfisherdev/folio/internal/config"
)

const reposFixture = `[
  {"id": 1, "name": "alpha", "stargazers_count": 5, "language": "Go", "updated_at": "2024-01-01T00:00:00Z", "fork": false, "private": false},
  {"id": 2, "name": "beta", "stargazers_count": 50, "language": "Rust", "updated_at": "2024-06-01T00:00:00Z", "fork": false, "private": false},
  {"id": 3, "name": "borrowed", "stargazers_count": 900, "language": "Go", "updated_at": "2024-07-01T00:00:00Z", "fork": true, "private": false}
]`

func TestProjectsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/hubot/repos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reposFixture))
	}))
	defer server.Close()

	t.Setenv(config.EnvGitHubAPIURL, server.URL+"/")
	t.Setenv(config.EnvGitHubAccount, "octocat")
	t.Setenv(config.EnvGitHubToken, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"projects", "--account", "hubot", "--sort", "stars"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var resp httphandler.ProjectsResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))

	require.Len(t, resp.Projects, 2)
	assert.Equal(t, "beta", resp.Projects[0].Name)
	assert.Equal(t, "alpha", resp.Projects[1].Name)
	assert.Equal(t, []string{"all", "Go", "Rust"}, resp.Languages)
	assert.Equal(t, "stars", resp.Query.Sort)
	assert.False(t, resp.Loading)
}
