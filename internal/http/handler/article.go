package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/http/dto"
	"pressdesk.app/unassigned/internal/service"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListUnassigned returns every article in the journal still waiting for an
// editor.
func (h *ArticleHandler) ListUnassigned(c *gin.Context) {
	ctx := c.Request.Context()

	journalID, err := strconv.ParseInt(c.Param("journal_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal id"})
		return
	}

	articles, err := h.articleService.ListUnassigned(ctx, journalID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list unassigned articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArticlesResponse(articles))
}

func (h *ArticleHandler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	detail, err := h.articleService.Detail(ctx, articleID)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load article detail", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleDetailResponse(detail))
}

func (h *ArticleHandler) SubmitCrosscheck(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req dto.SubmitCrosscheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleService.SubmitCrosscheck(ctx, articleID, req.FileURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, service.ErrCrosscheckDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "crosscheck is not configured"})
		default:
			slog.ErrorContext(ctx, "failed to submit crosscheck", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "crosscheck submission failed"})
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.ToArticleResponse(article))
}
