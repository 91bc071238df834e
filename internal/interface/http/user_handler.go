package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/response"
	"github.com/campusboard/bulletin-api/pkg/validation"
)

// UserHandler serves the admin user listing and management endpoints. All of
// them sit behind the session middleware.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// List GET /api/users — passwords never leave the entity (json:"-").
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error fetching users")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create POST /api/users — direct admin creation, no invitation code.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "All fields are required!", validation.ToDetails(err))
		return
	}

	user, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			response.Error(c, http.StatusBadRequest, "Username already taken.")
			return
		}
		h.Logger.WithError(err).WithField("username", req.Username).Error("error creating user")
		response.Error(c, http.StatusInternalServerError, "Error creating user!")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error deleting user")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.Status(http.StatusNoContent)
}

// Count GET /api/users/count
func (h *UserHandler) Count(c *gin.Context) {
	n, err := h.Svc.Count(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error counting users")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"userCount": n})
}
