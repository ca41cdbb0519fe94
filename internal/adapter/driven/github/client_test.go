package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	ghAdapter "github.com/ericfisherdev/folio/internal/adapter/driven/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates a Client backed by the given handler, using the full
// transport stack with the given cache TTL and token.
func newTestClient(t *testing.T, handler http.Handler, token string, ttl time.Duration) *ghAdapter.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := ghAdapter.NewHTTPClient(token, ttl, server.Client().Transport)
	client, err := ghAdapter.NewClientWithHTTPClient(httpClient, server.URL+"/")
	require.NoError(t, err)

	return client
}

// repoJSON is a helper struct for building GitHub API repository responses.
type repoJSON struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    *string   `json:"language"`
	Topics      []string  `json:"topics"`
	Updated     string    `json:"updated_at"`
	Created     string    `json:"created_at"`
	Fork        bool      `json:"fork"`
	Private     bool      `json:"private"`
	Owner       *userJSON `json:"owner,omitempty"`
}

type userJSON struct {
	Login string `json:"login"`
}

func strPtr(s string) *string { return &s }

func writeRepos(w http.ResponseWriter, repos []repoJSON) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(repos)
}

func TestListUserRepositories_RequestShape(t *testing.T) {
	var gotPath, gotSort, gotPerPage, gotAccept string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSort = r.URL.Query().Get("sort")
		gotPerPage = r.URL.Query().Get("per_page")
		gotAccept = r.Header.Get("Accept")
		writeRepos(w, []repoJSON{})
	})

	client := newTestClient(t, handler, "", 0)
	result, err := client.ListUserRepositories(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, "updated", gotSort)
	assert.Equal(t, "100", gotPerPage)
	assert.Equal(t, "application/vnd.github.v3+json", gotAccept)
}

func TestListUserRepositories_Mapping(t *testing.T) {
	repos := []repoJSON{
		{
			ID:          1,
			Name:        "alpha",
			Description: strPtr("First project"),
			HTMLURL:     "https://github.com/octocat/alpha",
			Stars:       5,
			Forks:       1,
			Language:    strPtr("Go"),
			Topics:      []string{"cli", "tools"},
			Updated:     "2024-01-01T00:00:00Z",
			Created:     "2023-01-01T00:00:00Z",
			Owner:       &userJSON{Login: "octocat"},
		},
		{
			ID:      2,
			Name:    "beta",
			HTMLURL: "https://github.com/octocat/beta",
			Stars:   50,
			Updated: "2024-06-01T00:00:00Z",
			Created: "2023-06-01T00:00:00Z",
			Fork:    true,
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeRepos(w, repos)
	})

	client := newTestClient(t, handler, "", 0)
	result, err := client.ListUserRepositories(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, result, 2)

	alpha := result[0]
	assert.Equal(t, int64(1), alpha.ID)
	assert.Equal(t, "alpha", alpha.Name)
	assert.Equal(t, "First project", alpha.Description)
	assert.Equal(t, "https://github.com/octocat/alpha", alpha.URL)
	assert.Equal(t, 5, alpha.Stars)
	assert.Equal(t, 1, alpha.Forks)
	assert.Equal(t, "Go", alpha.Language)
	assert.Equal(t, []string{"cli", "tools"}, alpha.Topics)
	assert.Equal(t, "octocat", alpha.Owner)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), alpha.UpdatedAt.UTC())
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), alpha.CreatedAt.UTC())

	// Missing optional fields map to zero values; forks are passed through.
	beta := result[1]
	assert.Equal(t, "", beta.Description)
	assert.Equal(t, "", beta.Language)
	assert.False(t, beta.HasLanguage())
	assert.Equal(t, []string{}, beta.Topics)
	assert.True(t, beta.IsFork)
}

func TestListUserRepositories_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Internal Server Error"}`))
	})

	client := newTestClient(t, handler, "", 0)
	result, err := client.ListUserRepositories(context.Background(), "octocat")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "listing repositories for octocat")
}

func TestListUserRepositories_MalformedBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not": "an array"`))
	})

	client := newTestClient(t, handler, "", 0)
	_, err := client.ListUserRepositories(context.Background(), "octocat")

	require.Error(t, err)
}

func TestListUserRepositories_CachedWithinTTL(t *testing.T) {
	var hits atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Cache-Control", "private, max-age=60")
		writeRepos(w, []repoJSON{{ID: 1, Name: "alpha", Updated: "2024-01-01T00:00:00Z"}})
	})

	client := newTestClient(t, handler, "", time.Hour)
	ctx := context.Background()

	first, err := client.ListUserRepositories(ctx, "octocat")
	require.NoError(t, err)
	second, err := client.ListUserRepositories(ctx, "octocat")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load(), "second call should be served from cache")
}

func TestListUserRepositories_CacheDisabled(t *testing.T) {
	var hits atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		writeRepos(w, []repoJSON{})
	})

	client := newTestClient(t, handler, "", 0)
	ctx := context.Background()

	_, err := client.ListUserRepositories(ctx, "octocat")
	require.NoError(t, err)
	_, err = client.ListUserRepositories(ctx, "octocat")
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestListUserRepositories_ErrorsAreNotCached(t *testing.T) {
	var hits atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	client := newTestClient(t, handler, "", time.Hour)
	ctx := context.Background()

	_, err := client.ListUserRepositories(ctx, "octocat")
	require.Error(t, err)
	_, err = client.ListUserRepositories(ctx, "octocat")
	require.Error(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestListUserRepositories_SendsToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeRepos(w, []repoJSON{})
	})

	client := newTestClient(t, handler, "ghp_secret", 0)
	_, err := client.ListUserRepositories(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "Bearer ghp_secret", gotAuth)
}

func TestListUserRepositories_ContextCanceled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeRepos(w, []repoJSON{})
	})

	client := newTestClient(t, handler, "", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListUserRepositories(ctx, "octocat")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"login": "octocat",
			"name": "The Octocat",
			"bio": "Mascot",
			"avatar_url": "https://avatars.example/octocat.png",
			"html_url": "https://github.com/octocat",
			"public_repos": 8,
			"followers": 100,
			"following": 9,
			"location": "San Francisco",
			"blog": "https://github.blog",
			"company": "@github",
			"created_at": "2011-01-25T18:44:36Z"
		}`))
	})

	client := newTestClient(t, handler, "", 0)
	profile, err := client.FetchProfile(context.Background(), "octocat")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "The Octocat", profile.DisplayName())
	assert.Equal(t, "Mascot", profile.Bio)
	assert.Equal(t, "https://avatars.example/octocat.png", profile.AvatarURL)
	assert.Equal(t, "https://github.com/octocat", profile.URL)
	assert.Equal(t, 8, profile.PublicRepos)
	assert.Equal(t, 100, profile.Followers)
	assert.Equal(t, 9, profile.Following)
	assert.Equal(t, "San Francisco", profile.Location)
	assert.Equal(t, "@github", profile.Company)
	assert.Equal(t, 2011, profile.CreatedAt.Year())
}

func TestFetchProfile_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	client := newTestClient(t, handler, "", 0)
	profile, err := client.FetchProfile(context.Background(), "nobody")

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.Contains(t, err.Error(), "fetching profile for nobody")
}
