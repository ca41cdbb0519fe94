package application

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// ApplyQuery filters and orders records according to q. It is a pure
// function: records is never modified and the result is a new slice.
//
// Search keeps records whose name or description contains q.Search,
// ignoring case. A specific language keeps exact, case-sensitive matches only.
// Sorting is stable.
func ApplyQuery(records []model.Repository, q model.FeedQuery) []model.Repository {
	needle := strings.ToLower(q.Search)

	out := make([]model.Repository, 0, len(records))
	for _, r := range records {
		if needle != "" && !matchesSearch(r, needle) {
			continue
		}
		if q.FiltersLanguage() && r.Language != q.Language {
			continue
		}
		out = append(out, r)
	}

	sortRepositories(out, q.Sort)
	return out
}

// matchesSearch expects needle to be lower-cased already.
func matchesSearch(r model.Repository, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) {
		return true
	}
	return r.Description != "" && strings.Contains(strings.ToLower(r.Description), needle)
}

func sortRepositories(repos []model.Repository, key model.SortKey) {
	switch model.ParseSortKey(string(key)) {
	case model.SortStars:
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return cmp.Compare(b.Stars, a.Stars)
		})
	case model.SortName:
		// Collators keep internal buffers; one per sort.
		collator := collate.New(language.English)
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return collator.CompareString(a.Name, b.Name)
		})
	default:
		slices.SortStableFunc(repos, func(a, b model.Repository) int {
			return b.UpdatedAt.Compare(a.UpdatedAt)
		})
	}
}

// LanguageFacets returns the distinct non-empty languages of records in
// first-seen order.
func LanguageFacets(records []model.Repository) []string {
	seen := make(map[string]struct{}, len(records))
	facets := make([]string, 0)

	for _, r := range records {
		if !r.HasLanguage() {
			continue
		}
		if _, ok := seen[r.Language]; ok {
			continue
		}
		seen[r.Language] = struct{}{}
		facets = append(facets, r.Language)
	}

	return facets
}
