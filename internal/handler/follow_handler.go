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

// FollowHandler handles follow relationships between users and authors.
type FollowHandler struct {
	followRepo repository.FollowRepository
	validator  *validator.Validator
}

// NewFollowHandler creates a new FollowHandler.
func NewFollowHandler(followRepo repository.FollowRepository, v *validator.Validator) *FollowHandler {
	return &FollowHandler{
		followRepo: followRepo,
		validator:  v,
	}
}

// FollowRequest is the body for POST and DELETE /api/v1/follows.
type FollowRequest struct {
	FollowerID string `json:"follower_id"`
	AuthorName string `json:"author_name"`
}

// Follow handles POST /api/v1/follows
func (h *FollowHandler) Follow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	follow := &domain.Follow{
		ID:         uuid.New().String(),
		FollowerID: req.FollowerID,
		AuthorName: req.AuthorName,
		CreatedAt:  time.Now(),
	}

	if err := h.validator.ValidateFollow(follow); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	if err := h.followRepo.Create(c.Request.Context(), follow); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "already following this author"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to create follow", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create follow"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": follow.ID})
}

// Unfollow handles DELETE /api/v1/follows
func (h *FollowHandler) Unfollow(c *gin.Context) {
	var req FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.FollowerID == "" || req.AuthorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "follower_id and author_name are required"})
		return
	}

	if err := h.followRepo.Delete(c.Request.Context(), req.FollowerID, req.AuthorName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "follow not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to delete follow", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete follow"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListFollowedAuthors handles GET /api/v1/users/:id/follows
func (h *FollowHandler) ListFollowedAuthors(c *gin.Context) {
	followerID := c.Param("id")

	if _, err := uuid.Parse(followerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	authors, err := h.followRepo.AuthorsByFollower(c.Request.Context(), followerID)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to list followed authors", "follower_id", followerID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list followed authors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authors": authors})
}

// IsFollowing handles GET /api/v1/follows/check
func (h *FollowHandler) IsFollowing(c *gin.Context) {
	followerID := c.Query("follower_id")
	author := c.Query("author")

	if _, err := uuid.Parse(followerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "follower_id must be a valid UUID"})
		return
	}
	if author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author is required"})
		return
	}

	following, err := h.followRepo.Exists(c.Request.Context(), followerID, author)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to check follow", "follower_id", followerID, "author", author, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check follow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// FollowerCount handles GET /api/v1/authors/:name/followers/count
func (h *FollowHandler) FollowerCount(c *gin.Context) {
	author := c.Param("name")
	if author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author name is required"})
		return
	}

	count, err := h.followRepo.CountByAuthor(c.Request.Context(), author)
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to count followers", "author", author, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count followers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"author": author, "followers": count})
}
