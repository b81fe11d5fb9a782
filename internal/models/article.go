package models

import (
	"time"
)

// Article represents an article in the system. Field names are the wire
// contract with API clients and the database.
type Article struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Content       string     `json:"content" db:"content"`
	Excerpt       string     `json:"excerpt" db:"excerpt"`
	FeaturedImage string     `json:"featured_image" db:"featured_image"`
	Published     bool       `json:"published" db:"published"`
	PublishedAt   *time.Time `json:"published_at" db:"published_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	Slug          string     `json:"slug" db:"slug"`
	Category      string     `json:"category" db:"category"`
	Tags          []string   `json:"tags" db:"-"` // Stored as JSON string in DB
	ReadingTime   int        `json:"reading_time" db:"reading_time"`
}

// ArticleInput is the editor payload for creating or updating an article.
// Slug, reading time and timestamps are derived on save, never accepted
// from the client.
type ArticleInput struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featured_image"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
}

// ArticleStats summarizes the admin dashboard counters.
type ArticleStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	ThisMonth int `json:"this_month"`
}

// SuggestedCategories is the fixed list offered by the editor. It is not
// enforced server-side; category stays free text.
var SuggestedCategories = []string{
	"Inchieste",
	"Politica",
	"Società",
	"Economia",
	"Cronaca",
	"Cultura",
}
