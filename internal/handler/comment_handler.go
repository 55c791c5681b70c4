package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lensline/eyewear-api/internal/models"
	"github.com/lensline/eyewear-api/internal/utils"
)

// CommentStore is the data-access surface the comment handler needs.
type CommentStore interface {
	List(ctx context.Context) ([]models.Comment, error)
	Create(ctx context.Context, text string) (*models.Comment, error)
}

// CommentHandler serves the comments resource.
type CommentHandler struct {
	store CommentStore
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(store CommentStore) *CommentHandler {
	return &CommentHandler{store: store}
}

// List returns all comments, newest first.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.store.List(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.Collection(c, comments, len(comments))
}

// Create stores a new comment.
func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Comment text is required")
		return
	}

	created, err := h.store.Create(c.Request.Context(), req.Comment)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.Success(c, http.StatusCreated, created, "Comment created successfully")
}
