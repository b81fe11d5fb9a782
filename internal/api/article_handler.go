package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/service"
)

const maxListLimit = 100

// ArticleHandler handles the public article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "articles").Logger(),
	}
}

// ListArticles handles GET /v1/articles?q=&category=&limit=
// Returns published articles, newest first, filtered by search term and
// category.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	query := service.ArticleQuery{
		Search:   c.Query("q"),
		Category: c.Query("category"),
		Limit:    parseLimit(c.Query("limit")),
	}

	articles, err := h.services.Article.ListPublished(ctx, query)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"count":    len(articles),
	})
}

// Feed handles GET /v1/articles/feed?limit=
// The home page feed: the newest published articles.
func (h *ArticleHandler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	limit := parseLimit(c.Query("limit"))
	if limit == 0 {
		limit = 6
	}

	articles, err := h.services.Article.FeedArticles(ctx, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleBySlug handles GET /v1/articles/:slug
// Published articles only. A miss is a user-facing not-found state with a
// recovery link back to the list.
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")

	article, err := h.services.Article.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":        "article not found",
				"articles_url": "/v1/articles",
			})
			return
		}
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// Categories handles GET /v1/categories
// Distinct categories of published articles plus the fixed editor
// suggestions.
func (h *ArticleHandler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.services.Article.Categories(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"suggested":  models.SuggestedCategories,
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
