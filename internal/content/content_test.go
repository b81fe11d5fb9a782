package content

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "accented italian title",
			title: "Società e Ambiente!",
			want:  "societa-e-ambiente",
		},
		{
			name:  "plain title",
			title: "Corruzione a Roma",
			want:  "corruzione-a-roma",
		},
		{
			name:  "uppercase and punctuation",
			title: "L'Economia: Più Città, Meno Perché",
			want:  "leconomia-piu-citta-meno-perche",
		},
		{
			name:  "whitespace runs collapse",
			title: "troppi    spazi\t\tqui",
			want:  "troppi-spazi-qui",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			title: "--- titolo ---",
			want:  "titolo",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "!?!?",
			want:  "",
		},
		{
			name:  "digits survive",
			title: "Elezioni 2026",
			want:  "elezioni-2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.title)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Società e Ambiente!",
		"Corruzione a Roma",
		"già-uno-slug",
		"",
		"   spazi ovunque   ",
	}
	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty content", text: "", want: 0},
		{name: "whitespace only", text: "   \n\t  ", want: 0},
		{name: "two words", text: "hello world", want: 1},
		{name: "exactly 200 words", text: words(200), want: 1},
		{name: "201 words rounds up", text: words(201), want: 2},
		{name: "600 words", text: words(600), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadingTime(tt.text)
			if got != tt.want {
				t.Errorf("ReadingTime(%d words) = %d, want %d", WordCount(tt.text), got, tt.want)
			}
		})
	}
}

func TestReadingTimeMonotonic(t *testing.T) {
	prev := 0
	for _, count := range []int{0, 1, 50, 199, 200, 201, 400, 1000} {
		got := ReadingTime(words(count))
		if got < prev {
			t.Errorf("ReadingTime(%d words) = %d, less than previous %d", count, got, prev)
		}
		prev = got
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("breve", 10); got != "breve" {
		t.Errorf("short text should pass through, got %q", got)
	}
	if got := Truncate("un testo molto lungo", 8); got != "un testo..." {
		t.Errorf("Truncate = %q, want %q", got, "un testo...")
	}
	// Rune-safe: accented characters must not be split
	if got := Truncate("èèèèè", 3); got != "èèè..." {
		t.Errorf("Truncate = %q, want %q", got, "èèè...")
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "7 marzo 2026" {
		t.Errorf("FormatDate = %q, want %q", got, "7 marzo 2026")
	}
	d = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "1 gennaio 2025" {
		t.Errorf("FormatDate = %q, want %q", got, "1 gennaio 2025")
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("parola ", n))
}
