package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HaqueArif/shine-on-server/internal/domain"
	"github.com/HaqueArif/shine-on-server/internal/service"
)

// CommentHandler serves the comment endpoints.
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// List handles GET /api/auth/comments.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/auth/comments. The payload is arbitrary.
func (h *CommentHandler) Create(c *gin.Context) {
	var data any
	if err := c.ShouldBindJSON(&data); err != nil {
		logrus.WithError(err).Warn("Handler.CreateComment: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.commentService.Create(c.Request.Context(), data); err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "comment added successful",
	})
}
