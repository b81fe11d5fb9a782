package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/journalist-portfolio-api/internal/database"
	"github.com/journalist-portfolio-api/internal/models"
)

const articleColumns = `id, title, content, excerpt, featured_image, published, published_at, created_at, updated_at, slug, category, tags, reading_time`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// List retrieves articles matching the filter, newest first
func (r *articleRepo) List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	var args []interface{}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		query += fmt.Sprintf(" WHERE published = $%d", len(args))
	}

	switch filter.OrderBy {
	case OrderByPublishedAt:
		query += " ORDER BY published_at DESC NULLS LAST"
	default:
		query += " ORDER BY created_at DESC"
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves an article by slug, optionally restricted to
// published articles (the public detail page)
func (r *articleRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	if publishedOnly {
		query += ` AND published = TRUE`
	}
	return r.getOne(ctx, query, slug)
}

// SlugExists checks whether another article already uses the slug
func (r *articleRepo) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)",
		slug, excludeID,
	).Scan(&exists)
	return exists, err
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tagsJSON := marshalTags(article.Tags)

	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Excerpt,
		article.FeaturedImage, article.Published, article.PublishedAt,
		article.CreatedAt, article.UpdatedAt, article.Slug,
		article.Category, tagsJSON, article.ReadingTime,
	)
	return err
}

// Update overwrites the full record by ID (no patch semantics)
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	tagsJSON := marshalTags(article.Tags)

	query := `
		UPDATE articles SET
			title = $2, content = $3, excerpt = $4, featured_image = $5,
			published = $6, published_at = $7, updated_at = $8,
			slug = $9, category = $10, tags = $11, reading_time = $12
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.Excerpt,
		article.FeaturedImage, article.Published, article.PublishedAt,
		article.UpdatedAt, article.Slug, article.Category, tagsJSON,
		article.ReadingTime,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetPublished flips the published flag and keeps published_at in step
// with it. Returns false when no article matched.
func (r *articleRepo) SetPublished(ctx context.Context, id string, published bool, publishedAt *time.Time) (bool, error) {
	query := `
		UPDATE articles SET published = $2, published_at = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, published, publishedAt, time.Now())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete permanently removes an article. Returns false when no article
// matched.
func (r *articleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// StreamAll streams all articles for export
func (r *articleRepo) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	query := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return err
		}
		if err := callback(article); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *articleRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Article, error) {
	article, err := scanArticle(r.db.QueryRowContext(ctx, query, arg))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte
	var publishedAt sql.NullTime

	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.Excerpt,
		&article.FeaturedImage, &article.Published, &publishedAt,
		&article.CreatedAt, &article.UpdatedAt, &article.Slug,
		&article.Category, &tagsJSON, &article.ReadingTime,
	)
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}
	return &article, nil
}

func marshalTags(tags []string) []byte {
	if tags == nil {
		return []byte("[]")
	}
	data, _ := json.Marshal(tags)
	return data
}
