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

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// List GET /api/categories — ordered by name.
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error fetching categories")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Create POST /api/categories — duplicates are refused by the unique
// constraint, not a pre-insert lookup.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Name is required", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			response.Error(c, http.StatusConflict, "Category already exists")
			return
		}
		h.Logger.WithError(err).Error("error creating category")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// GetByID GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Category not found")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error fetching category")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Update PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "Name is required", validation.ToDetails(err))
		return
	}
	cat, err := h.Svc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, repository.ErrConflict):
			response.Error(c, http.StatusConflict, "Category already exists")
		default:
			h.Logger.WithError(err).WithField("id", id).Error("error updating category")
			response.Error(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete DELETE /api/categories/:id — refused while events or notices still
// reference the category (RESTRICT at the store layer).
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, repository.ErrForeignKey):
			response.Error(c, http.StatusConflict, "Category is still referenced by events or notices")
		default:
			h.Logger.WithError(err).WithField("id", id).Error("error deleting category")
			response.Error(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	response.Message(c, http.StatusOK, "Category deleted successfully")
}
