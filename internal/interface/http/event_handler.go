package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusboard/bulletin-api/internal/application"
	"github.com/campusboard/bulletin-api/internal/domain/entity"
	"github.com/campusboard/bulletin-api/internal/domain/repository"
	"github.com/campusboard/bulletin-api/pkg/response"
	"github.com/campusboard/bulletin-api/pkg/validation"
)

type EventHandler struct {
	Svc    *application.EventService
	Logger *logrus.Logger
}

func NewEventHandler(svc *application.EventService, logger *logrus.Logger) *EventHandler {
	return &EventHandler{Svc: svc, Logger: logger}
}

type eventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Place       string `json:"place" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	CategoryID  int64  `json:"category_id" binding:"required"`
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

// queryCategoryID reads the optional ?categoryId= filter.
func queryCategoryID(c *gin.Context) (*int64, bool) {
	raw := c.Query("categoryId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid categoryId")
		return nil, false
	}
	return &id, true
}

// ListRecent GET /api/events — the 5 most recent events.
func (h *EventHandler) ListRecent(c *gin.Context) {
	events, err := h.Svc.ListRecent(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("error fetching recent events")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListAll GET /api/events/all?categoryId=
func (h *EventHandler) ListAll(c *gin.Context) {
	categoryID, ok := queryCategoryID(c)
	if !ok {
		return
	}
	events, err := h.Svc.ListAll(c.Request.Context(), categoryID)
	if err != nil {
		h.Logger.WithError(err).Error("error fetching events")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetByID GET /api/events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error fetching event details")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListByCategory GET /api/events/categories/:categoryId — unjoined read,
// empty list when nothing matches.
func (h *EventHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}
	events, err := h.Svc.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.Logger.WithError(err).Error("error fetching events by category")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create POST /api/events — public in the source, kept public.
func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "All values are required.", validation.ToDetails(err))
		return
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Place:       req.Place,
		Date:        req.Date,
		Time:        req.Time,
		CategoryID:  req.CategoryID,
	}
	if err := h.Svc.Create(c.Request.Context(), event); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			response.Error(c, http.StatusBadRequest, "Category does not exist.")
			return
		}
		h.Logger.WithError(err).Error("error adding event")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update PUT /api/events/:id — auth required; replaces all fields.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "All values are required.", validation.ToDetails(err))
		return
	}

	event := &entity.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Place:       req.Place,
		Date:        req.Date,
		Time:        req.Time,
		CategoryID:  req.CategoryID,
	}
	if err := h.Svc.Update(c.Request.Context(), event); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, "Event not found.")
		case errors.Is(err, repository.ErrForeignKey):
			response.Error(c, http.StatusBadRequest, "Category does not exist.")
		default:
			h.Logger.WithError(err).WithField("id", id).Error("error updating event")
			response.Error(c, http.StatusInternalServerError, "Server Error")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully!", "event": event})
}

// Delete DELETE /api/events/:id — auth required; a repeat delete is a 404.
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Event not found!")
			return
		}
		h.Logger.WithError(err).WithField("id", id).Error("error deleting event")
		response.Error(c, http.StatusInternalServerError, "Server Error")
		return
	}
	response.Message(c, http.StatusOK, "Event deleted successfully!")
}
