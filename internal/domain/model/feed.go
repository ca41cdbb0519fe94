package model

import "strings"

// FeedQuery is the user-controlled state that narrows and orders the feed.
type FeedQuery struct {
	Search   string
	Language string
	Sort     SortKey
}

// DefaultFeedQuery returns the query a fresh view starts with.
func DefaultFeedQuery() FeedQuery {
	return FeedQuery{
		Search:   "",
		Language: LanguageAll,
		Sort:     SortUpdated,
	}
}

// NewFeedQuery builds a FeedQuery from raw user input, applying defaults for
// empty values.
func NewFeedQuery(search, language, sort string) FeedQuery {
	q := DefaultFeedQuery()
	q.Search = search
	if language = strings.TrimSpace(language); language != "" {
		q.Language = language
	}
	q.Sort = ParseSortKey(sort)
	return q
}

// FiltersLanguage reports whether a specific language is selected.
func (q FeedQuery) FiltersLanguage() bool {
	return q.Language != "" && q.Language != LanguageAll
}

// FeedSummary aggregates the fetched repository set for the about section.
type FeedSummary struct {
	Repositories int
	TotalStars   int
	TotalForks   int
	MedianStars  float64
	TopLanguage  string
}
