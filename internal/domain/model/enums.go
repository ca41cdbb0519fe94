package model

// SortKey selects the ordering of the visible project list.
type SortKey string

const (
	SortUpdated SortKey = "updated"
	SortStars   SortKey = "stars"
	SortName    SortKey = "name"
)

// LanguageAll is the synthetic language facet that disables language filtering.
const LanguageAll = "all"

// ParseSortKey maps user input to a SortKey. Unknown or empty input falls back
// to SortUpdated.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortStars:
		return SortStars
	case SortName:
		return SortName
	default:
		return SortUpdated
	}
}

// ActivityTier classifies how recently a repository was updated.
type ActivityTier string

const (
	ActivityHot    ActivityTier = "hot"
	ActivityActive ActivityTier = "active"
	ActivityWarm   ActivityTier = "warm"
	ActivityStale  ActivityTier = "stale"
)
