package application_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/model"
)

func staticSource(repos []model.Repository, err error) *mockRepositorySource {
	return &mockRepositorySource{
		listRepos: func(_ context.Context, _ string) ([]model.Repository, error) {
			return repos, err
		},
	}
}

func waitSession(t *testing.T, s *application.FeedSession) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Wait(ctx))
}

func TestFeedService_Fetch_ExcludesForksAndPrivate(t *testing.T) {
	source := staticSource([]model.Repository{
		{ID: 1, Name: "public"},
		{ID: 2, Name: "forked", IsFork: true},
		{ID: 3, Name: "secret", IsPrivate: true},
		{ID: 4, Name: "both", IsFork: true, IsPrivate: true},
		{ID: 5, Name: "other"},
	}, nil)

	svc := application.NewFeedService(source, "octocat", nil)
	got := svc.Fetch(context.Background())

	assert.Equal(t, []string{"public", "other"}, names(got))
	for _, r := range got {
		assert.False(t, r.IsFork)
		assert.False(t, r.IsPrivate)
	}
	assert.Equal(t, []string{"octocat"}, source.calls())
}

func TestFeedService_Fetch_FailOpen(t *testing.T) {
	svc := application.NewFeedService(staticSource(nil, errors.New("connection refused")), "octocat", nil)

	got := svc.Fetch(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFeedService_Fetch_LogLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{"canceled fetch is debug", context.Canceled, "level=DEBUG", "repository fetch canceled"},
		{"wrapped cancel is debug", fmt.Errorf("list repos: %w", context.Canceled), "level=DEBUG", "repository fetch canceled"},
		{"network failure is warn", errors.New("connection refused"), "level=WARN", "repository fetch failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			svc := application.NewFeedService(staticSource(nil, tt.err), "octocat", logger)

			got := svc.Fetch(context.Background())

			assert.Empty(t, got)
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), tt.wantMsg)
			if tt.wantLevel == "level=DEBUG" {
				assert.NotContains(t, buf.String(), "level=WARN")
			}
		})
	}
}

func TestFeedService_Profile(t *testing.T) {
	source := &mockRepositorySource{
		fetchProfile: func(_ context.Context, account string) (*model.Profile, error) {
			return &model.Profile{Login: account, Name: "The Octocat"}, nil
		},
	}
	svc := application.NewFeedService(source, "octocat", nil)

	profile := svc.Profile(context.Background())
	require.NotNil(t, profile)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, "octocat", svc.Account())
}

func TestFeedService_Profile_FailOpen(t *testing.T) {
	source := &mockRepositorySource{
		fetchProfile: func(_ context.Context, _ string) (*model.Profile, error) {
			return nil, errors.New("404 Not Found")
		},
	}
	svc := application.NewFeedService(source, "ghost", nil)

	assert.Nil(t, svc.Profile(context.Background()))
}

func TestFeedSession_LoadingUntilFetchSettles(t *testing.T) {
	release := make(chan struct{})
	source := &mockRepositorySource{
		listRepos: func(_ context.Context, _ string) ([]model.Repository, error) {
			<-release
			return alphaBeta(), nil
		},
	}
	svc := application.NewFeedService(source, "octocat", nil)

	session := svc.Open(context.Background())
	defer session.Close()

	assert.True(t, session.Loading())
	assert.Empty(t, session.Visible())
	assert.Equal(t, []string{model.LanguageAll}, session.Facets())

	close(release)
	waitSession(t, session)

	assert.False(t, session.Loading())
	assert.Equal(t, []string{"beta", "alpha"}, names(session.Visible()))
}

func TestFeedSession_FailOpen(t *testing.T) {
	svc := application.NewFeedService(staticSource(nil, errors.New("network unreachable")), "octocat", nil)

	session := svc.Open(context.Background())
	defer session.Close()
	waitSession(t, session)

	assert.False(t, session.Loading())
	assert.Empty(t, session.Records())
	assert.Empty(t, session.Visible())
	assert.Equal(t, []string{model.LanguageAll}, session.Facets())
}

func TestFeedSession_QueryUpdatesRecomputeVisible(t *testing.T) {
	svc := application.NewFeedService(staticSource(alphaBeta(), nil), "octocat", nil)
	session := svc.Open(context.Background())
	defer session.Close()
	waitSession(t, session)

	session.SetQuery(model.NewFeedQuery("", "", "stars"))
	assert.Equal(t, []string{"beta", "alpha"}, names(session.Visible()))

	session.SetQuery(model.NewFeedQuery("alp", "", "stars"))
	assert.Equal(t, []string{"alpha"}, names(session.Visible()))

	session.SetQuery(model.NewFeedQuery("", "Rust", "stars"))
	assert.Equal(t, []string{"beta"}, names(session.Visible()))

	session.SetQuery(model.NewFeedQuery("", "", "bogus"))
	assert.Equal(t, model.LanguageAll, session.Query().Language)
	assert.Equal(t, model.SortUpdated, session.Query().Sort)

	session.SetQuery(model.NewFeedQuery("", "all", "name"))
	assert.Equal(t, []string{"alpha", "beta"}, names(session.Visible()))
}

func TestFeedSession_FacetsComeFromAllRecords(t *testing.T) {
	svc := application.NewFeedService(staticSource(sampleRepos(), nil), "octocat", nil)
	session := svc.Open(context.Background())
	defer session.Close()
	waitSession(t, session)

	session.SetQuery(model.NewFeedQuery("", "Rust", ""))
	require.Len(t, session.Visible(), 1)

	assert.Equal(t, []string{model.LanguageAll, "Go", "Rust", "TypeScript", "go"}, session.Facets())
}

func TestFeedSession_CloseAbortsFetch(t *testing.T) {
	started := make(chan struct{})
	source := &mockRepositorySource{
		listRepos: func(ctx context.Context, _ string) ([]model.Repository, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	svc := application.NewFeedService(source, "octocat", nil)

	session := svc.Open(context.Background())
	<-started
	session.Close()
	waitSession(t, session)

	assert.False(t, session.Loading())
	assert.Empty(t, session.Records())
}

func TestFeedSession_CloseDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	source := &mockRepositorySource{
		listRepos: func(_ context.Context, _ string) ([]model.Repository, error) {
			<-release
			return alphaBeta(), nil
		},
	}
	svc := application.NewFeedService(source, "octocat", nil)

	session := svc.Open(context.Background())
	session.Close()
	close(release)
	waitSession(t, session)

	assert.Empty(t, session.Records(), "result arriving after Close must be discarded")
	session.Close()
}

func TestFeedSession_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	source := &mockRepositorySource{
		listRepos: func(_ context.Context, _ string) ([]model.Repository, error) {
			<-release
			return nil, nil
		},
	}
	svc := application.NewFeedService(source, "octocat", nil)
	session := svc.Open(context.Background())
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := session.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, session.Loading())
}

func TestFeedSession_Summary(t *testing.T) {
	svc := application.NewFeedService(staticSource(alphaBeta(), nil), "octocat", nil)
	session := svc.Open(context.Background())
	defer session.Close()
	waitSession(t, session)

	summary := session.Summary()
	assert.Equal(t, 2, summary.Repositories)
	assert.Equal(t, 55, summary.TotalStars)
}
