package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/repository"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	ListError   error
	CreateError error
	UpdateError error
	DeleteCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) List(ctx context.Context, filter repository.ArticleFilter) ([]*models.Article, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}

	var articles []*models.Article
	for _, a := range m.Articles {
		if filter.Published != nil && a.Published != *filter.Published {
			continue
		}
		articles = append(articles, a)
	}

	sort.Slice(articles, func(i, j int) bool {
		if filter.OrderBy == repository.OrderByPublishedAt {
			ti, tj := articles[i].PublishedAt, articles[j].PublishedAt
			if ti != nil && tj != nil {
				return ti.After(*tj)
			}
			return tj == nil
		}
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})

	if filter.Limit > 0 && len(articles) > filter.Limit {
		articles = articles[:filter.Limit]
	}
	return articles, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*models.Article, error) {
	for _, a := range m.Articles {
		if a.Slug != slug {
			continue
		}
		if publishedOnly && !a.Published {
			continue
		}
		return a, nil
	}
	return nil, nil
}

func (m *MockArticleRepository) SlugExists(ctx context.Context, slug string, excludeID string) (bool, error) {
	for _, a := range m.Articles {
		if a.Slug == slug && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if _, ok := m.Articles[article.ID]; !ok {
		return models.ErrNotFound
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) SetPublished(ctx context.Context, id string, published bool, publishedAt *time.Time) (bool, error) {
	a, ok := m.Articles[id]
	if !ok {
		return false, nil
	}
	a.Published = published
	a.PublishedAt = publishedAt
	a.UpdatedAt = time.Now()
	return true, nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) (bool, error) {
	m.DeleteCalls++
	if _, ok := m.Articles[id]; !ok {
		return false, nil
	}
	delete(m.Articles, id)
	return true, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func (m *MockArticleRepository) StreamAll(ctx context.Context, callback func(*models.Article) error) error {
	articles, _ := m.List(ctx, repository.ArticleFilter{})
	for _, a := range articles {
		if err := callback(a); err != nil {
			return err
		}
	}
	return nil
}

// MockUserRepository is an in-memory implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User // keyed by email
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.Users[email], nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}
