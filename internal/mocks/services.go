package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	Articles      map[string]*models.Article
	SaveFunc      func(ctx context.Context, id string, input *models.ArticleInput, publish bool) (*models.Article, error)
	SaveError     error
	DeleteError   error
	StatsResponse *models.ArticleStats
	ExportBody    string
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleService) ListPublished(ctx context.Context, query service.ArticleQuery) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		if a.Published {
			articles = append(articles, a)
		}
	}
	articles = service.FilterArticles(articles, query.Search, query.Category)
	if query.Limit > 0 && len(articles) > query.Limit {
		articles = articles[:query.Limit]
	}
	return articles, nil
}

func (m *MockArticleService) FeedArticles(ctx context.Context, limit int) ([]*models.Article, error) {
	return m.ListPublished(ctx, service.ArticleQuery{Limit: limit})
}

func (m *MockArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	for _, a := range m.Articles {
		if a.Slug == slug && a.Published {
			return a, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MockArticleService) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, a := range m.Articles {
		if a.Published && a.Category != "" && !seen[a.Category] {
			seen[a.Category] = true
			categories = append(categories, a.Category)
		}
	}
	return categories, nil
}

func (m *MockArticleService) ListAll(ctx context.Context) ([]*models.Article, error) {
	var articles []*models.Article
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	return articles, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return a, nil
}

func (m *MockArticleService) Save(ctx context.Context, id string, input *models.ArticleInput, publish bool) (*models.Article, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, id, input, publish)
	}
	if m.SaveError != nil {
		return nil, m.SaveError
	}
	if id == "" {
		id = "generated-id"
	}
	article := &models.Article{
		ID:        id,
		Title:     input.Title,
		Content:   input.Content,
		Published: publish,
	}
	m.Articles[id] = article
	return article, nil
}

func (m *MockArticleService) SetPublished(ctx context.Context, id string, published bool) (*models.Article, error) {
	a, ok := m.Articles[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	a.Published = published
	return a, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	if _, ok := m.Articles[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleService) Stats(ctx context.Context) (*models.ArticleStats, error) {
	if m.StatsResponse != nil {
		return m.StatsResponse, nil
	}
	return &models.ArticleStats{}, nil
}

func (m *MockArticleService) Export(ctx context.Context, w http.ResponseWriter, format string) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Write([]byte(m.ExportBody))
	return nil
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	Tokens      map[string]*models.Session // token -> session
	SignInFunc  func(ctx context.Context, email, password string) (string, *models.Session, error)
	SignInError error

	mu          sync.Mutex
	subscribers []chan models.SessionEvent
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		Tokens: make(map[string]*models.Session),
	}
}

func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (string, *models.Session, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	if m.SignInError != nil {
		return "", nil, m.SignInError
	}
	session := &models.Session{Email: email}
	m.Tokens["mock-token"] = session
	return "mock-token", session, nil
}

func (m *MockAuthService) SignOut(ctx context.Context, token string) error {
	delete(m.Tokens, token)
	return nil
}

func (m *MockAuthService) Session(ctx context.Context, token string) (*models.Session, error) {
	session, ok := m.Tokens[token]
	if !ok {
		return nil, models.ErrInvalidToken
	}
	return session, nil
}

func (m *MockAuthService) Subscribe() (<-chan models.SessionEvent, func()) {
	ch := make(chan models.SessionEvent, 8)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch, func() {}
}

func (m *MockAuthService) Publish(event models.SessionEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	return nil
}
