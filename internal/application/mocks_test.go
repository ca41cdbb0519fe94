package application_test

import (
	"context"
	"sync"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// --- Mock implementations ---

type mockRepositorySource struct {
	listRepos    func(ctx context.Context, account string) ([]model.Repository, error)
	fetchProfile func(ctx context.Context, account string) (*model.Profile, error)

	mu       sync.Mutex
	accounts []string
}

func (m *mockRepositorySource) ListUserRepositories(ctx context.Context, account string) ([]model.Repository, error) {
	m.mu.Lock()
	m.accounts = append(m.accounts, account)
	m.mu.Unlock()

	if m.listRepos == nil {
		return nil, nil
	}
	return m.listRepos(ctx, account)
}

func (m *mockRepositorySource) FetchProfile(ctx context.Context, account string) (*model.Profile, error) {
	if m.fetchProfile == nil {
		return nil, nil
	}
	return m.fetchProfile(ctx, account)
}

func (m *mockRepositorySource) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.accounts...)
}

type mockContactStore struct {
	saved   []model.ContactMessage
	saveErr error
	nextID  int64
}

func (m *mockContactStore) Save(_ context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	if m.saveErr != nil {
		return model.ContactMessage{}, m.saveErr
	}
	m.nextID++
	msg.ID = m.nextID
	m.saved = append(m.saved, msg)
	return msg, nil
}

func (m *mockContactStore) ListRecent(_ context.Context, limit int) ([]model.ContactMessage, error) {
	out := make([]model.ContactMessage, 0, limit)
	for i := len(m.saved) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.saved[i])
	}
	return out, nil
}
