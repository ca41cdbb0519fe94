// Package github implements the RepositorySource port using the go-github library.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

// listPageSize is the maximum number of repositories requested per activation.
const listPageSize = 100

// Compile-time interface satisfaction check.
var _ driven.RepositorySource = (*Client)(nil)

// Client implements the driven.RepositorySource port using the go-github library.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client against baseURL using the transport
// stack built by NewHTTPClient. token may be empty for anonymous access.
func NewClient(baseURL, token string, cacheTTL time.Duration) (*Client, error) {
	return NewClientWithHTTPClient(NewHTTPClient(token, cacheTTL, http.DefaultTransport), baseURL)
}

// NewHTTPClient builds the outbound transport stack:
//  1. cache hint (marks successful responses fresh for cacheTTL)
//  2. httpcache (in-memory response cache honouring the hint)
//  3. oauth2 (bearer token, only when token is non-empty)
//  4. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//
// A non-positive cacheTTL disables caching.
func NewHTTPClient(token string, cacheTTL time.Duration, base http.RoundTripper) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}

	transport := base
	if cacheTTL > 0 {
		transport = &httpcache.Transport{
			Transport:           newCacheHintTransport(base, cacheTTL),
			Cache:               httpcache.NewMemoryCache(),
			MarkCachedResponses: true,
		}
	}

	if token != "" {
		transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}

	return github_ratelimit.NewClient(transport)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// Tests use it to point the client at an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListUserRepositories retrieves the first page of up to 100 repositories owned
// by account, sorted by last update. Forks and private repositories are returned
// as-is; exclusion is the caller's concern.
func (c *Client) ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: gh.ListOptions{
			PerPage: listPageSize,
		},
	}

	repos, resp, err := c.gh.Repositories.ListByUser(ctx, account, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", account, err)
	}

	logRateLimit(resp, "users/"+account+"/repos", len(repos))

	out := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil {
			continue
		}
		out = append(out, mapRepository(r))
	}

	return out, nil
}

// FetchProfile retrieves the public profile of account.
func (c *Client) FetchProfile(ctx context.Context, account string) (*model.Profile, error) {
	user, resp, err := c.gh.Users.Get(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("fetching profile for %s: %w", account, err)
	}

	logRateLimit(resp, "users/"+account, 1)

	profile := mapProfile(user)
	return &profile, nil
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, endpoint string, count int) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", endpoint,
		"count", count,
		"from_cache", resp.Header.Get(httpcache.XFromCache) == "1",
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)

	if resp.Rate.Limit > 0 && resp.Rate.Remaining < 10 {
		slog.Warn("github rate limit low",
			"remaining", resp.Rate.Remaining,
			"reset_in", time.Until(resp.Rate.Reset.Time).Round(time.Second),
		)
	}
}

// mapRepository converts a go-github Repository to a domain model Repository.
// It uses GetXxx() helper methods exclusively so missing fields become zero values.
func mapRepository(r *gh.Repository) model.Repository {
	topics := make([]string, 0, len(r.Topics))
	topics = append(topics, r.Topics...)

	return model.Repository{
		ID:            r.GetID(),
		Name:          r.GetName(),
		Description:   r.GetDescription(),
		URL:           r.GetHTMLURL(),
		Homepage:      r.GetHomepage(),
		Owner:         r.GetOwner().GetLogin(),
		DefaultBranch: r.GetDefaultBranch(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Language:      r.GetLanguage(),
		Topics:        topics,
		UpdatedAt:     r.GetUpdatedAt().Time,
		CreatedAt:     r.GetCreatedAt().Time,
		IsFork:        r.GetFork(),
		IsPrivate:     r.GetPrivate(),
	}
}

// mapProfile converts a go-github User to a domain model Profile.
func mapProfile(u *gh.User) model.Profile {
	return model.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		AvatarURL:   u.GetAvatarURL(),
		URL:         u.GetHTMLURL(),
		Location:    u.GetLocation(),
		Blog:        u.GetBlog(),
		Company:     u.GetCompany(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}
