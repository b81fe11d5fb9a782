package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/journalist-portfolio-api/internal/config"
	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/repository"
)

// ArticleQuery narrows the public article listing. Search matches title,
// excerpt or any tag case-insensitively; Category must match exactly. Both
// are optional and ANDed.
type ArticleQuery struct {
	Search   string
	Category string
	Limit    int
}

// ArticleService defines the publishing workflow and the read views the
// pages depend on.
type ArticleService interface {
	ListPublished(ctx context.Context, query ArticleQuery) ([]*models.Article, error)
	FeedArticles(ctx context.Context, limit int) ([]*models.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	Categories(ctx context.Context) ([]string, error)

	ListAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Save(ctx context.Context, id string, input *models.ArticleInput, publish bool) (*models.Article, error)
	SetPublished(ctx context.Context, id string, published bool) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*models.ArticleStats, error)
	Export(ctx context.Context, w http.ResponseWriter, format string) error
}

// AuthService defines session issuance, validation, revocation and the
// push-style session-change notifications the shell subscribes to.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, *models.Session, error)
	SignOut(ctx context.Context, token string) error
	Session(ctx context.Context, token string) (*models.Session, error)
	Subscribe() (<-chan models.SessionEvent, func())
	EnsureAdmin(ctx context.Context) error
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Auth    AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Article: NewArticleService(repos.Article, log),
		Auth:    NewAuthService(repos.User, &cfg.Auth, log),
	}
}
