package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/campusboard/bulletin-api/internal/container"
	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
	"github.com/campusboard/bulletin-api/internal/interface/middleware"
)

// EventsModule registers the event routes. Reads and create are public,
// update and delete require a session.
type EventsModule struct {
	Handler *handlers.EventHandler
}

func NewEventsModule(h *handlers.EventHandler) *EventsModule {
	return &EventsModule{Handler: h}
}

func (m *EventsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/events", m.Handler.ListRecent)
	rg.GET("/events/all", m.Handler.ListAll)
	rg.GET("/events/categories/:categoryId", m.Handler.ListByCategory)
	rg.GET("/events/:id", m.Handler.GetByID)
	rg.POST("/events", m.Handler.Create)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions()))
	{
		auth.PUT("/events/:id", m.Handler.Update)
		auth.DELETE("/events/:id", m.Handler.Delete)
	}
}
