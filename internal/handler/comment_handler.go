package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
	"github.com/vasantha-kumar-s/bloggy/internal/logger"
	"github.com/vasantha-kumar-s/bloggy/internal/middleware"
	"github.com/vasantha-kumar-s/bloggy/internal/repository"
	"github.com/vasantha-kumar-s/bloggy/internal/validator"
)

// CommentHandler handles comments on documents.
type CommentHandler struct {
	commentRepo repository.CommentRepository
	docRepo     repository.DocumentRepository
	validator   *validator.Validator
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentRepo repository.CommentRepository, docRepo repository.DocumentRepository, v *validator.Validator) *CommentHandler {
	return &CommentHandler{
		commentRepo: commentRepo,
		docRepo:     docRepo,
		validator:   v,
	}
}

// CreateCommentRequest is the body for POST /api/v1/documents/:id/comments.
type CreateCommentRequest struct {
	Body   string `json:"body"`
	UserID string `json:"user_id"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID         string `json:"id"`
	Body       string `json:"body"`
	DocumentID string `json:"document_id"`
	UserID     string `json:"user_id"`
	CreatedAt  string `json:"created_at"`
}

func toCommentResponse(cm *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Body:       cm.Body,
		DocumentID: cm.DocumentID,
		UserID:     cm.UserID,
		CreatedAt:  cm.CreatedAt.Format(TimeFormat),
	}
}

// CreateComment handles POST /api/v1/documents/:id/comments. Comments
// are only accepted on approved documents.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	docID := c.Param("id")

	if _, err := uuid.Parse(docID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	doc, err := h.docRepo.GetByID(c.Request.Context(), docID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to get document", "document_id", docID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve document"})
		return
	}
	if doc.Status != domain.StatusApproved {
		c.JSON(http.StatusConflict, gin.H{"error": "document is not open for comments"})
		return
	}

	comment := &domain.Comment{
		ID:         uuid.New().String(),
		Body:       req.Body,
		DocumentID: docID,
		UserID:     req.UserID,
		CreatedAt:  time.Now(),
	}

	if err := h.validator.ValidateComment(comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	if err := h.commentRepo.Create(c.Request.Context(), comment); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to create comment", "document_id", docID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListComments handles GET /api/v1/documents/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	docID := c.Param("id")

	if _, err := uuid.Parse(docID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	comments, err := h.commentRepo.ListByDocument(c.Request.Context(), docID)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to list comments", "document_id", docID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	c.JSON(http.StatusOK, gin.H{"comments": out})
}
