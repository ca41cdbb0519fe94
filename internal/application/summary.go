package application

import (
	"github.com/montanaflynn/stats"

	"github.com/ericfisherdev/folio/internal/domain/model"
)

// Summarize aggregates records into counts for the about section. The top
// language is the most frequent non-empty language; ties go to the language
// seen first.
func Summarize(records []model.Repository) model.FeedSummary {
	summary := model.FeedSummary{Repositories: len(records)}
	if len(records) == 0 {
		return summary
	}

	stars := make([]float64, 0, len(records))
	counts := make(map[string]int)
	for _, r := range records {
		summary.TotalStars += r.Stars
		summary.TotalForks += r.Forks
		stars = append(stars, float64(r.Stars))
		if r.HasLanguage() {
			counts[r.Language]++
		}
	}

	if median, err := stats.Median(stats.Float64Data(stars)); err == nil {
		summary.MedianStars = median
	}

	best := 0
	for _, lang := range LanguageFacets(records) {
		if counts[lang] > best {
			best = counts[lang]
			summary.TopLanguage = lang
		}
	}

	return summary
}
