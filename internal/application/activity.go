package application

import (
	"time"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// Activity tier boundaries, measured from the repository's last update.
const (
	hotWindow    = 1 * time.Hour
	activeWindow = 24 * time.Hour
	warmWindow   = 7 * 24 * time.Hour
)

// ClassifyActivity determines the activity tier based on the time elapsed
// between updatedAt and now. A zero-value time is treated as ActivityStale.
func ClassifyActivity(now, updatedAt time.Time) model.ActivityTier {
	if updatedAt.IsZero() {
		return model.ActivityStale
	}

	elapsed := now.Sub(updatedAt)

	switch {
	case elapsed < hotWindow:
		return model.ActivityHot
	case elapsed < activeWindow:
		return model.ActivityActive
	case elapsed < warmWindow:
		return model.ActivityWarm
	default:
		return model.ActivityStale
	}
}
