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
	"github.com/vasantha-kumar-s/bloggy/internal/pipeline"
	"github.com/vasantha-kumar-s/bloggy/internal/repository"
	"github.com/vasantha-kumar-s/bloggy/internal/validator"
)

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Enqueuer submits a document id for asynchronous analysis.
type Enqueuer interface {
	Enqueue(id string) error
}

// DocumentHandler handles document submission, retrieval and moderation.
type DocumentHandler struct {
	docRepo   repository.DocumentRepository
	pipeline  Enqueuer
	validator *validator.Validator
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docRepo repository.DocumentRepository, p Enqueuer, v *validator.Validator) *DocumentHandler {
	return &DocumentHandler{
		docRepo:   docRepo,
		pipeline:  p,
		validator: v,
	}
}

// SubmitDocumentRequest is the body for POST /api/v1/documents.
type SubmitDocumentRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

// UpdateStatusRequest is the body for PUT /api/v1/documents/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// DocumentResponse represents a document in API responses.
type DocumentResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Author         string   `json:"author"`
	Status         string   `json:"status"`
	Tags           []string `json:"tags,omitempty"`
	QualityScore   *float64 `json:"quality_score,omitempty"`
	NoveltyScore   *float64 `json:"novelty_score,omitempty"`
	ProfanityFound *bool    `json:"profanity_found,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func toDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:             doc.ID,
		Title:          doc.Title,
		Body:           doc.Body,
		Author:         doc.Author,
		Status:         string(doc.Status),
		Tags:           doc.Tags,
		QualityScore:   doc.QualityScore,
		NoveltyScore:   doc.NoveltyScore,
		ProfanityFound: doc.ProfanityFound,
		CreatedAt:      doc.CreatedAt.Format(TimeFormat),
		UpdatedAt:      doc.UpdatedAt.Format(TimeFormat),
	}
}

func toDocumentListResponse(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = toDocumentResponse(&docs[i])
	}
	return out
}

// SubmitDocument handles POST /api/v1/documents. The document is stored
// as pending and queued for analysis; the response never waits for the
// pipeline.
func (h *DocumentHandler) SubmitDocument(c *gin.Context) {
	var req SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	now := time.Now()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Body:      req.Body,
		Author:    req.Author,
		Status:    domain.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.validator.ValidateDocument(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	if err := h.docRepo.Create(c.Request.Context(), doc); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to store document", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store document"})
		return
	}

	if err := h.pipeline.Enqueue(doc.ID); err != nil {
		if errors.Is(err, pipeline.ErrQueueFull) {
			// The document is stored but stays pending until resubmitted
			// or swept; tell the client to back off.
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analysis queue is full, try again later"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to queue document", "document_id", doc.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue document for analysis"})
		return
	}

	c.JSON(http.StatusAccepted, toDocumentResponse(doc))
}

// GetDocument handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	doc, err := h.docRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to get document", "document_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve document"})
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(doc))
}

// ListDocuments handles GET /api/v1/documents with optional status or
// author query filters.
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		docs []domain.Document
		err  error
	)

	switch {
	case c.Query("status") != "":
		status := domain.Status(c.Query("status"))
		if !domain.IsValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		docs, err = h.docRepo.ListByStatus(ctx, status)
	case c.Query("author") != "":
		docs, err = h.docRepo.ListByAuthor(ctx, c.Query("author"))
	default:
		docs, err = h.docRepo.List(ctx)
	}

	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to list documents", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": toDocumentListResponse(docs)})
}

// UpdateStatus handles PUT /api/v1/documents/:id/status - the
// moderation action. Only documents the pipeline has finished with can
// be moderated.
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	doc, err := h.docRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to get document", "document_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve document"})
		return
	}

	next := domain.Status(req.Status)
	if err := h.validator.ValidateStatusTransition(doc.Status, next); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition", "fields": validator.FieldErrors(err)})
		return
	}

	doc.Status = next
	doc.UpdatedAt = time.Now()
	if err := h.docRepo.Update(c.Request.Context(), doc); err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to update document status", "document_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update document"})
		return
	}

	c.JSON(http.StatusOK, toDocumentResponse(doc))
}
