// Package format provides the display helpers used when rendering projects.
// Every function is total: it always returns a printable value.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// dateLayout renders dates as en-US short dates, e.g. "Jun 1, 2024".
const dateLayout = "Jan 2, 2006"

// fallbackColor is used for any language missing from languageColors.
const fallbackColor = "#858585"

var languageColors = map[string]string{
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C#":         "#239120",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Swift":      "#ffac45",
	"Kotlin":     "#F18E33",
	"Dart":       "#00B4AB",
	"Vue":        "#41b883",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"SCSS":       "#c6538c",
}

// Stars abbreviates star counts of 1000 and above to thousands with one
// decimal place ("1.5k"). Smaller counts are printed as-is.
func Stars(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// Date formats t as "Mon D, YYYY" in UTC. The zero time yields "".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// DateString parses an RFC 3339 timestamp and formats it like Date.
// Unparseable input yields "".
func DateString(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return ""
	}
	return Date(t)
}

// LanguageColor returns the display color for a language tag.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return fallbackColor
}

// Topics returns at most limit topics and the number left out.
func Topics(topics []string, limit int) ([]string, int) {
	if limit < 0 {
		limit = 0
	}
	if len(topics) <= limit {
		return topics, 0
	}
	return topics[:limit], len(topics) - limit
}
