package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/domain/entity"
	"github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/response"
	"github.com/campusboard/bulletin-api/pkg/validation"
)

type NoticeHandler struct {
	Svc    *application.NoticeService
	Logger *logrus.Logger
}

func NewNoticeHandler(svc *application.NoticeService, logger *logrus.Logger) *NoticeHandler {
	return &NoticeHandler{Svc: svc, Logger: logger}
}

type noticeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	CategoryID  int64  `json:"category_id" binding:"required"`
}

// ListRecent GET /api/notices — the 5 most recent notices.
func (h *NoticeHandler) ListRecent(c *gin.Context) {
	notices, err := h.Svc.ListRecent(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error fetching recent notices")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, notices)
}

// ListAll GET /api/notices/all?categoryId=
func (h *NoticeHandler) ListAll(c *gin.Context) {
	categoryID, ok := queryCategoryID(c)
	if !ok {
		return
	}
	notices, err := h.Svc.ListAll(c.Request.Context(), categoryID)
	if err != nil {
		h.Logger.WithError(err).Error("error fetching notices")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, notices)
}

// GetByID GET /api/notices/:id
func (h *NoticeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	notice, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Notice not found")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error fetching notice details")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, notice)
}

// ListByCategory GET /api/notices/categories/:categoryId
func (h *NoticeHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	notices, err := h.Svc.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.Logger.WithError(err).Error("error fetching notices by category")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, notices)
}

// Create POST /api/notices — auth required.
func (h *NoticeHandler) Create(c *gin.Context) {
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "All values are required.", validation.ToDetails(err))
		return
	}

	notice := &entity.Notice{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := h.Svc.Create(c.Request.Context(), notice); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			response.Error(c, http.StatusBadRequest, "Category does not exist.")
			return
		}
		h.Logger.WithError(err).Error("error adding notice")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusCreated, notice)
}

// Update PUT /api/notices/:id — auth required; replaces all fields.
func (h *NoticeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "All values are required.", validation.ToDetails(err))
		return
	}

	notice := &entity.Notice{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := h.Svc.Update(c.Request.Context(), notice); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Notice not found.")
		case errors.Is(err, repository.ErrForeignKey):
			response.Error(c, http.StatusBadRequest, "Category does not exist.")
		default:
			h.Logger.WithError(err).WithField("id", id).Error("error updating notice")
			response.Error(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notice updated successfully!", "notice": notice})
}

// Delete DELETE /api/notices/:id — auth required.
func (h *NoticeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Notice not found!")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error deleting notice")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	response.Message(c, http.StatusOK, "Notice deleted successfully!")
}
