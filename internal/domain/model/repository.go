package model

import "time"

// Repository represents one public GitHub repository shown in the project feed.
// Empty Description and Language mean the source did not provide them.
type Repository struct {
	ID            int64
	Name          string
	Description   string
	URL           string
	Homepage      string
	Owner         string
	DefaultBranch string
	Stars         int
	Forks         int
	OpenIssues    int
	Language      string
	Topics        []string
	UpdatedAt     time.Time
	CreatedAt     time.Time
	IsFork        bool
	IsPrivate     bool
}

// HasLanguage reports whether the source determined a primary language.
func (r Repository) HasLanguage() bool {
	return r.Language != ""
}

// Listable reports whether the repository may appear in the feed at all.
// Forks and private repositories are excluded at fetch time.
func (r Repository) Listable() bool {
	return !r.IsFork && !r.IsPrivate
}
