package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/journalist-portfolio-api/internal/content"
	"github.com/journalist-portfolio-api/internal/editor"
	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/repository"
	"github.com/journalist-portfolio-api/internal/validation"
)

// fallback slug for titles that reduce to nothing (e.g. all punctuation)
const defaultSlug = "articolo"

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewArticleService creates a new ArticleService
func NewArticleService(repo repository.ArticleRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
		now:  time.Now,
	}
}

// ListPublished returns published articles newest first, filtered by the
// query.
func (s *articleService) ListPublished(ctx context.Context, query ArticleQuery) ([]*models.Article, error) {
	published := true
	articles, err := s.repo.List(ctx, repository.ArticleFilter{
		Published: &published,
		OrderBy:   repository.OrderByPublishedAt,
		Limit:     query.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list published: %w", err)
	}
	return FilterArticles(articles, query.Search, query.Category), nil
}

// FeedArticles returns the newest published articles for the home feed.
func (s *articleService) FeedArticles(ctx context.Context, limit int) ([]*models.Article, error) {
	return s.ListPublished(ctx, ArticleQuery{Limit: limit})
}

// GetPublishedBySlug resolves the public detail page.
func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.repo.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, fmt.Errorf("get by slug: %w", err)
	}
	if article == nil {
		return nil, models.ErrNotFound
	}
	return article, nil
}

// Categories returns the distinct categories of published articles, in
// publication order.
func (s *articleService) Categories(ctx context.Context) ([]string, error) {
	articles, err := s.ListPublished(ctx, ArticleQuery{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, a := range articles {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		categories = append(categories, a.Category)
	}
	return categories, nil
}

// ListAll returns every article for the admin table, newest first.
func (s *articleService) ListAll(ctx context.Context) ([]*models.Article, error) {
	articles, err := s.repo.List(ctx, repository.ArticleFilter{OrderBy: repository.OrderByCreatedAt})
	if err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return articles, nil
}

// GetByID loads a single article for the editor.
func (s *articleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	if article == nil {
		return nil, models.ErrNotFound
	}
	return article, nil
}

// Save runs the draft/publish workflow: validate, normalize the rich-text
// content, recompute slug and reading time, dedupe tags, then persist the
// full record. id == "" creates; otherwise the record is overwritten.
// Validation failure blocks the save entirely.
func (s *articleService) Save(ctx context.Context, id string, input *models.ArticleInput, publish bool) (*models.Article, error) {
	if errs := validation.ValidateArticleInput(input); len(errs) > 0 {
		return nil, errs
	}

	normalized, err := editor.Normalize(input.Content)
	if err != nil {
		return nil, fmt.Errorf("normalize content: %w", err)
	}
	plain := editor.PlainText(normalized)
	if plain == "" {
		return nil, validation.Errors{{Field: "content", Message: "content is required"}}
	}

	now := s.now()
	article := &models.Article{
		ID:            id,
		Title:         strings.TrimSpace(input.Title),
		Content:       normalized,
		Excerpt:       strings.TrimSpace(input.Excerpt),
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		Category:      strings.TrimSpace(input.Category),
		Tags:          dedupeTags(input.Tags),
		ReadingTime:   content.ReadingTime(plain),
		UpdatedAt:     now,
	}

	if publish {
		article.Published = true
		article.PublishedAt = &now
	}

	if id == "" {
		article.ID = uuid.New().String()
		article.CreatedAt = now
	} else {
		existing, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		article.CreatedAt = existing.CreatedAt
	}

	slug, err := s.uniqueSlug(ctx, article.Title, article.ID)
	if err != nil {
		return nil, err
	}
	article.Slug = slug

	if id == "" {
		err = s.repo.Create(ctx, article)
	} else {
		err = s.repo.Update(ctx, article)
	}
	if err != nil {
		return nil, fmt.Errorf("save article: %w", err)
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("slug", article.Slug).
		Bool("published", article.Published).
		Msg("Article saved")

	return article, nil
}

// SetPublished toggles the published flag. The change is persisted first;
// the returned record reflects the confirmed state, so callers only update
// their view after success.
func (s *articleService) SetPublished(ctx context.Context, id string, published bool) (*models.Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var publishedAt *time.Time
	if published {
		now := s.now()
		publishedAt = &now
	}

	ok, err := s.repo.SetPublished(ctx, id, published, publishedAt)
	if err != nil {
		return nil, fmt.Errorf("set published: %w", err)
	}
	if !ok {
		return nil, models.ErrNotFound
	}

	article.Published = published
	article.PublishedAt = publishedAt
	article.UpdatedAt = s.now()

	s.log.Info().
		Str("article_id", id).
		Bool("published", published).
		Msg("Article publish state changed")

	return article, nil
}

// Delete permanently removes an article.
func (s *articleService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !ok {
		return models.ErrNotFound
	}

	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// Stats computes the admin dashboard counters.
func (s *articleService) Stats(ctx context.Context) (*models.ArticleStats, error) {
	articles, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &models.ArticleStats{Total: len(articles)}
	for _, a := range articles {
		if a.Published {
			stats.Published++
		} else {
			stats.Drafts++
		}
		if a.CreatedAt.Month() == now.Month() && a.CreatedAt.Year() == now.Year() {
			stats.ThisMonth++
		}
	}
	return stats, nil
}

// uniqueSlug derives the slug from the title and appends a numeric suffix
// when another article already claims it, keeping public URLs unambiguous.
func (s *articleService) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := content.Slugify(title)
	if base == "" {
		base = defaultSlug
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug check: %w", err)
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// FilterArticles applies the list-page filters: a case-insensitive search
// over title, excerpt and tags, and an exact category match. Both filters
// are ANDed; empty values match everything.
func FilterArticles(articles []*models.Article, search, category string) []*models.Article {
	if search == "" && category == "" {
		return articles
	}

	term := strings.ToLower(search)
	var filtered []*models.Article
	for _, a := range articles {
		if category != "" && a.Category != category {
			continue
		}
		if term != "" && !matchesTerm(a, term) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchesTerm(a *models.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Excerpt), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// dedupeTags trims tags and removes duplicates (case-sensitive) while
// preserving first-seen order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
