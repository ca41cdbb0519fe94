package driven

import (
	"context"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// RepositorySource defines the driven port for reading public data from the
// source-code hosting API.
type RepositorySource interface {
	// ListUserRepositories returns up to 100 repositories owned by account,
	// most recently updated first, exactly as the source reports them.
	ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error)
	// FetchProfile returns the public profile of account.
	FetchProfile(ctx context.Context, account string) (*model.Profile, error)
}
