package repository

import (
	"context"
	"time"

	"github.com/journalist-portfolio-api/internal/models"
)

// notConfiguredArticleRepo is the null-object strategy selected when no
// database credentials were supplied. Reads come back empty so public pages
// render a safe, empty state; writes fail with models.ErrNotConfigured
// instead of a connection error.
type notConfiguredArticleRepo struct{}

func (notConfiguredArticleRepo) List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	return nil, nil
}

func (notConfiguredArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return nil, nil
}

func (notConfiguredArticleRepo) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	return nil, nil
}

func (notConfiguredArticleRepo) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	return false, nil
}

func (notConfiguredArticleRepo) Create(ctx context.Context, article *models.Article) error {
	return models.ErrNotConfigured
}

func (notConfiguredArticleRepo) Update(ctx context.Context, article *models.Article) error {
	return models.ErrNotConfigured
}

func (notConfiguredArticleRepo) SetPublished(ctx context.Context, id string, published bool, publishedAt *time.Time) (bool, error) {
	return false, models.ErrNotConfigured
}

func (notConfiguredArticleRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, models.ErrNotConfigured
}

func (notConfiguredArticleRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}

func (notConfiguredArticleRepo) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	return nil
}

type notConfiguredUserRepo struct{}

func (notConfiguredUserRepo) Create(ctx context.Context, user *models.User) error {
	return models.ErrNotConfigured
}

func (notConfiguredUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, models.ErrNotConfigured
}

func (notConfiguredUserRepo) Count(ctx context.Context) (int, error) {
	return 0, nil
}
