package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pressdesk.app/unassigned/internal/http/dto"
	"pressdesk.app/unassigned/internal/http/middleware"
	"pressdesk.app/unassigned/internal/model"
	"pressdesk.app/unassigned/internal/service"
)

type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetAccount(ctx)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	assignment, err := h.assignmentService.Assign(ctx, articleID, req.EditorID, model.AssignmentType(req.AssignmentType), actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, service.ErrEditorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "editor not found"})
		case errors.Is(err, service.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": "editor already assigned to this article"})
		case errors.Is(err, service.ErrRoleMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "editor does not hold an editorial role in this journal"})
		case errors.Is(err, service.ErrEventDelivery):
			// Assignment committed, a listener failed. Surface as upstream
			// failure so the caller knows the side effects are incomplete.
			slog.ErrorContext(ctx, "assignment committed but event delivery failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "assignment saved but downstream notification failed"})
		default:
			slog.ErrorContext(ctx, "failed to assign editor", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign editor"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, editorID, ok := pairParams(c)
	if !ok {
		return
	}

	actor := middleware.GetAccount(ctx)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.assignmentService.Unassign(ctx, articleID, editorID, actor.ID); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to unassign editor", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unassign editor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "editor unassigned"})
}

func (h *AssignmentHandler) Notify(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, editorID, ok := pairParams(c)
	if !ok {
		return
	}

	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := middleware.GetAccount(ctx)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	assignment, err := h.assignmentService.Notify(ctx, articleID, editorID, req.Message, req.Skip, actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, service.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no pending notification for this assignment"})
		case errors.Is(err, service.ErrEventDelivery):
			slog.ErrorContext(ctx, "notification recorded but event delivery failed", "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "notification recorded but downstream delivery failed"})
		default:
			slog.ErrorContext(ctx, "failed to notify editor", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to notify editor"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// Preview returns the rendered default message for the compose form.
func (h *AssignmentHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, editorID, ok := pairParams(c)
	if !ok {
		return
	}

	message, err := h.assignmentService.ProposedMessage(ctx, articleID, editorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		case errors.Is(err, service.ErrEditorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "editor not found"})
		case errors.Is(err, service.ErrAssignmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no pending notification for this assignment"})
		default:
			slog.ErrorContext(ctx, "failed to render notification preview", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render preview"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NotificationPreviewResponse{Message: message})
}

func pairParams(c *gin.Context) (articleID, editorID int64, ok bool) {
	articleID, err := strconv.ParseInt(c.Param("article_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return 0, 0, false
	}
	editorID, err = strconv.ParseInt(c.Param("editor_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid editor id"})
		return 0, 0, false
	}
	return articleID, editorID, true
}
