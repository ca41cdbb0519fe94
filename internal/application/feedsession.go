package application

import (
	"context"
	"sync"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// FeedSession holds the state of one project-feed view: the fetched
// records, written once when the fetch settles, and the user's query.
// The visible list is never stored; Visible recomputes it on every call.
// A FeedSession is safe for concurrent use.
type FeedSession struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu      sync.RWMutex
	records []model.Repository
	query   model.FeedQuery
	closed  bool
}

// settle stores the fetch result unless the session was closed or its
// context ended while the fetch was in flight.
func (f *FeedSession) settle(ctx context.Context, records []model.Repository) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || ctx.Err() != nil {
		return
	}
	f.records = records
}

// Loading reports whether the fetch has not settled yet.
func (f *FeedSession) Loading() bool {
	select {
	case <-f.done:
		return false
	default:
		return true
	}
}

// Done returns a channel that is closed once the fetch has settled.
func (f *FeedSession) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the fetch settles or ctx ends.
func (f *FeedSession) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close aborts an in-flight fetch and discards its result. It is safe to
// call Close more than once.
func (f *FeedSession) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.cancel()
}

// Records returns a copy of the fetched records.
func (f *FeedSession) Records() []model.Repository {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]model.Repository, len(f.records))
	copy(out, f.records)
	return out
}

// Query returns the current query.
func (f *FeedSession) Query() model.FeedQuery {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.query
}

// SetQuery replaces the whole query.
func (f *FeedSession) SetQuery(q model.FeedQuery) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = q
}

// Visible returns the records that match the current query, in query order.
func (f *FeedSession) Visible() []model.Repository {
	f.mu.RLock()
	records, q := f.records, f.query
	f.mu.RUnlock()

	return ApplyQuery(records, q)
}

// Facets returns the selectable language facets, "all" first. Facets are
// derived from every fetched record, never from the visible subset.
func (f *FeedSession) Facets() []string {
	f.mu.RLock()
	records := f.records
	f.mu.RUnlock()

	langs := LanguageFacets(records)
	facets := make([]string, 0, len(langs)+1)
	facets = append(facets, model.LanguageAll)
	return append(facets, langs...)
}

// Summary aggregates the fetched records.
func (f *FeedSession) Summary() model.FeedSummary {
	f.mu.RLock()
	records := f.records
	f.mu.RUnlock()

	return Summarize(records)
}
