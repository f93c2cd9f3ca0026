package handler

import (
	"context"
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

// Welcomer greets newly registered users.
type Welcomer interface {
	SendWelcome(ctx context.Context, user *domain.User) error
}

// UserHandler handles user registration and lookup.
type UserHandler struct {
	userRepo  repository.UserRepository
	notifier  Welcomer
	validator *validator.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository, notifier Welcomer, v *validator.Validator) *UserHandler {
	return &UserHandler{
		userRepo:  userRepo,
		notifier:  notifier,
		validator: v,
	}
}

// RegisterUserRequest is the body for POST /api/v1/users.
type RegisterUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Active    bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format(TimeFormat),
	}
}

// RegisterUser handles POST /api/v1/users. A welcome mail failure does
// not fail the registration.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.validator.ValidateUser(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validator.FieldErrors(err)})
		return
	}

	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email is already registered"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	if h.notifier != nil {
		if err := h.notifier.SendWelcome(c.Request.Context(), user); err != nil {
			logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to send welcome mail", "user_id", user.ID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// GetUser handles GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		logger.WithRequestID(middleware.GetRequestID(c)).Error("failed to get user", "user_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
