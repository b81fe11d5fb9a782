package repository

import (
	"context"
	"time"

	"github.com/journalist-portfolio-api/internal/database"
	"github.com/journalist-portfolio-api/internal/models"
)

// Ordering options for article listings.
const (
	OrderByCreatedAt   = "created_at"
	OrderByPublishedAt = "published_at"
)

// ArticleFilter narrows an article listing. Zero values mean "no filter";
// ordering is always descending, matching the site pages.
type ArticleFilter struct {
	Published *bool
	OrderBy   string // OrderByCreatedAt (default) or OrderByPublishedAt
	Limit     int    // 0 = no limit
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error)
	SlugExists(ctx context.Context, slug string, excludeID string) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	SetPublished(ctx context.Context, id string, published bool, publishedAt *time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Article) error) error
}

// UserRepository defines the interface for admin account data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		User:    NewUserRepo(db),
	}
}

// NewNotConfigured creates the degraded null-object repositories used when
// no database credentials were supplied: reads return empty results, writes
// return models.ErrNotConfigured, and the server keeps running.
func NewNotConfigured() *Repositories {
	return &Repositories{
		Article: notConfiguredArticleRepo{},
		User:    notConfiguredUserRepo{},
	}
}
