package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vasantha-kumar-s/bloggy/internal/domain"
	"github.com/vasantha-kumar-s/bloggy/internal/mocks"
	"github.com/vasantha-kumar-s/bloggy/internal/validator"
)

func commentBody(t *testing.T, body, userID string) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(CreateCommentRequest{Body: body, UserID: userID})
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestCommentHandler_CreateComment(t *testing.T) {
	t.Run("creates a comment on an approved document", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		docRepo := mocks.NewMockDocumentRepository(t)
		h := NewCommentHandler(commentRepo, docRepo, validator.NewValidator())

		docID := uuid.New().String()
		docRepo.EXPECT().
			GetByID(mock.Anything, docID).
			Return(&domain.Document{ID: docID, Status: domain.StatusApproved}, nil)
		commentRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		router := gin.New()
		router.POST("/api/v1/documents/:id/comments", h.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+docID+"/comments",
			commentBody(t, "Nice write-up.", uuid.New().String()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp CommentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, docID, resp.DocumentID)
	})

	t.Run("rejects comments on unapproved documents", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		docRepo := mocks.NewMockDocumentRepository(t)
		h := NewCommentHandler(commentRepo, docRepo, validator.NewValidator())

		docID := uuid.New().String()
		docRepo.EXPECT().
			GetByID(mock.Anything, docID).
			Return(&domain.Document{ID: docID, Status: domain.StatusReview}, nil)

		router := gin.New()
		router.POST("/api/v1/documents/:id/comments", h.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+docID+"/comments",
			commentBody(t, "Nice write-up.", uuid.New().String()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
		commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown document returns 404", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		docRepo := mocks.NewMockDocumentRepository(t)
		h := NewCommentHandler(commentRepo, docRepo, validator.NewValidator())

		docID := uuid.New().String()
		docRepo.EXPECT().
			GetByID(mock.Anything, docID).
			Return(nil, domain.ErrNotFound)

		router := gin.New()
		router.POST("/api/v1/documents/:id/comments", h.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+docID+"/comments",
			commentBody(t, "Nice write-up.", uuid.New().String()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		commentRepo := mocks.NewMockCommentRepository(t)
		docRepo := mocks.NewMockDocumentRepository(t)
		h := NewCommentHandler(commentRepo, docRepo, validator.NewValidator())

		docID := uuid.New().String()
		docRepo.EXPECT().
			GetByID(mock.Anything, docID).
			Return(&domain.Document{ID: docID, Status: domain.StatusApproved}, nil)

		router := gin.New()
		router.POST("/api/v1/documents/:id/comments", h.CreateComment)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/"+docID+"/comments",
			commentBody(t, "", uuid.New().String()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCommentHandler_ListComments(t *testing.T) {
	commentRepo := mocks.NewMockCommentRepository(t)
	docRepo := mocks.NewMockDocumentRepository(t)
	h := NewCommentHandler(commentRepo, docRepo, validator.NewValidator())

	docID := uuid.New().String()
	commentRepo.EXPECT().
		ListByDocument(mock.Anything, docID).
		Return([]domain.Comment{
			{ID: uuid.New().String(), Body: "First", DocumentID: docID, UserID: uuid.New().String()},
			{ID: uuid.New().String(), Body: "Second", DocumentID: docID, UserID: uuid.New().String()},
		}, nil)

	router := gin.New()
	router.GET("/api/v1/documents/:id/comments", h.ListComments)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+docID+"/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []CommentResponse `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Comments, 2)
}
