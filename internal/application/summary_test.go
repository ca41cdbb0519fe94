package application_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/folio/internal/application"
	"github.com/ericfisherdev/folio/internal/domain/model"
)

func TestSummarize(t *testing.T) {
	got := application.Summarize(sampleRepos())

	assert.Equal(t, 6, got.Repositories)
	assert.Equal(t, 103, got.TotalStars)
	// Sorted stars: 1 3 7 12 40 40.
	assert.InDelta(t, 9.5, got.MedianStars, 0.0001)
	assert.Equal(t, "Go", got.TopLanguage)
}

func TestSummarize_TieGoesToFirstSeenLanguage(t *testing.T) {
	records := []model.Repository{
		{Name: "a", Language: "Rust", Forks: 2},
		{Name: "b", Language: "Go", Forks: 1},
		{Name: "c"},
	}

	got := application.Summarize(records)
	assert.Equal(t, "Rust", got.TopLanguage)
	assert.Equal(t, 3, got.TotalForks)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, model.FeedSummary{}, application.Summarize(nil))
}

func TestClassifyActivity(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		wantTier model.ActivityTier
	}{
		{"30 minutes ago is hot", 30 * time.Minute, model.ActivityHot},
		{"59 minutes ago is hot (boundary)", 59 * time.Minute, model.ActivityHot},
		{"61 minutes ago is active (boundary)", 61 * time.Minute, model.ActivityActive},
		{"12 hours ago is active", 12 * time.Hour, model.ActivityActive},
		{"25 hours ago is warm", 25 * time.Hour, model.ActivityWarm},
		{"3 days ago is warm", 3 * 24 * time.Hour, model.ActivityWarm},
		{"8 days ago is stale", 8 * 24 * time.Hour, model.ActivityStale},
		{"zero time is stale", 0, model.ActivityStale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var updated time.Time
			if tt.elapsed > 0 {
				updated = now.Add(-tt.elapsed)
			}
			assert.Equal(t, tt.wantTier, application.ClassifyActivity(now, updated))
		})
	}
}
