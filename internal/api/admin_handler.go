package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/service"
)

// AdminHandler handles the authenticated article-management endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// articleRequest is the editor payload; Publish selects between the two
// save actions (draft vs publish).
type articleRequest struct {
	models.ArticleInput
	Publish bool `json:"publish"`
}

// ListArticles handles GET /v1/admin/articles
// Every article, drafts included, newest first.
func (h *AdminHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	articles, err := h.services.Article.ListAll(ctx)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
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

// GetArticle handles GET /v1/admin/articles/:id
func (h *AdminHandler) GetArticle(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	article, err := h.services.Article.GetByID(ctx, id)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to get article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// CreateArticle handles POST /v1/admin/articles
// First save from the editor, as draft or published.
func (h *AdminHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Save(ctx, "", &req.ArticleInput, req.Publish)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Msg("Failed to create article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save article"})
		return
	}

	h.log.Info().
		Str("article_id", article.ID).
		Bool("published", article.Published).
		Msg("Article created")

	c.JSON(http.StatusCreated, article)
}

// UpdateArticle handles PUT /v1/admin/articles/:id
// Full-record overwrite with recomputed slug and reading time.
func (h *AdminHandler) UpdateArticle(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Save(ctx, id, &req.ArticleInput, req.Publish)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to update article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// SetPublished handles PATCH /v1/admin/articles/:id/published
// The publish/unpublish toggle. The response carries the confirmed record;
// clients update their view from it rather than optimistically.
func (h *AdminHandler) SetPublished(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req struct {
		Published bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.SetPublished(ctx, id, req.Published)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to toggle publish state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /v1/admin/articles/:id
// Permanent; confirmation happens client-side before the call.
func (h *AdminHandler) DeleteArticle(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Article.Delete(ctx, id); err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to delete article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete article"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Stats handles GET /v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.services.Article.Stats(ctx)
	if err != nil {
		if writeServiceError(c, err) {
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Export handles GET /v1/admin/export?format=ndjson|csv
// Streams the full article archive directly to the response.
func (h *AdminHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	format := c.Query("format")
	if format == "" {
		format = "ndjson"
	}
	if format != "ndjson" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: ndjson, csv"})
		return
	}

	if err := h.services.Article.Export(ctx, c.Writer, format); err != nil {
		h.log.Error().Err(err).Str("format", format).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}
