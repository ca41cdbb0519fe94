// Package application contains use-case orchestration services.
package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ericfisherdev/folio/internal/domain/model"
	"github.com/ericfisherdev/folio/internal/domain/port/driven"
)

// FeedService fetches the configured account's public repositories and
// profile. All of its fetches are fail-open: failures are logged and
// degrade to empty results.
type FeedService struct {
	source  driven.RepositorySource
	account string
	logger  *slog.Logger
}

// NewFeedService creates a FeedService for account. A nil logger falls back
// to slog.Default().
func NewFeedService(source driven.RepositorySource, account string, logger *slog.Logger) *FeedService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedService{
		source:  source,
		account: account,
		logger:  logger,
	}
}

// Account returns the account whose repositories are listed.
func (s *FeedService) Account() string {
	return s.account
}

// Fetch performs a single attempt to list the account's repositories and
// drops forks and private repositories. It never returns nil and never
// fails: on any error it logs and returns an empty slice.
func (s *FeedService) Fetch(ctx context.Context) []model.Repository {
	repos, err := s.source.ListUserRepositories(ctx, s.account)
	if errors.Is(err, context.Canceled) {
		s.logger.Debug("repository fetch canceled", "account", s.account)
		return []model.Repository{}
	}
	if err != nil {
		s.logger.Warn("repository fetch failed, showing empty feed",
			"account", s.account,
			"error", err,
		)
		return []model.Repository{}
	}

	listable := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Listable() {
			listable = append(listable, r)
		}
	}

	s.logger.Debug("repositories fetched",
		"account", s.account,
		"received", len(repos),
		"listable", len(listable),
	)

	return listable
}

// Profile fetches the account's public profile. It returns nil when the
// profile cannot be fetched.
func (s *FeedService) Profile(ctx context.Context) *model.Profile {
	profile, err := s.source.FetchProfile(ctx, s.account)
	if err != nil {
		s.logger.Warn("profile fetch failed",
			"account", s.account,
			"error", err,
		)
		return nil
	}
	return profile
}

// Open activates a new FeedSession and starts its fetch in the background.
// The fetch is bound to ctx and to the session's lifetime: Close aborts it.
func (s *FeedService) Open(ctx context.Context) *FeedSession {
	fetchCtx, cancel := context.WithCancel(ctx)

	session := &FeedSession{
		cancel:  cancel,
		done:    make(chan struct{}),
		records: []model.Repository{},
		query:   model.DefaultFeedQuery(),
	}

	go func() {
		defer close(session.done)
		records := s.Fetch(fetchCtx)
		session.settle(fetchCtx, records)
	}()

	return session
}
