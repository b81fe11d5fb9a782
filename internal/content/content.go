// Package content holds the pure text helpers shared by the article
// pipeline: slug generation, reading-time estimation, truncation and
// date formatting.
package content

import (
	"fmt"
	"strings"
	"time"
)

// WordsPerMinute is the fixed reading rate used for reading-time estimates.
const WordsPerMinute = 200

var transliterations = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
	'ñ': 'n',
}

// Slugify derives a lowercase URL-safe identifier from a title:
// accented Latin characters are transliterated, anything outside
// [a-z0-9 -] is stripped, whitespace runs collapse to single hyphens and
// repeated or edge hyphens are removed. Pure and total; an empty title
// yields an empty slug.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if t, ok := transliterations[r]; ok {
			r = t
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	slug := strings.Join(fields, "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return strings.Trim(slug, "-")
}

// WordCount counts words by splitting on whitespace runs.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime estimates reading minutes at WordsPerMinute, rounded up.
// Blank input counts as zero words and yields 0; any non-empty text
// yields at least 1.
func ReadingTime(text string) int {
	words := WordCount(text)
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Truncate shortens text to at most max runes, trimming trailing space and
// appending an ellipsis when something was cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

var italianMonths = [...]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// FormatDate renders a timestamp as a long-form Italian date, matching the
// site locale ("2 gennaio 2006").
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), italianMonths[t.Month()-1], t.Year())
}
