package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/campusboard/bulletin-api/internal/container"
	handlers "github.com/campusboard/bulletin-api/internal/interface/http"
	"github.com/campusboard/bulletin-api/internal/interface/middleware"
)

// NoticesModule registers the notice routes. Reads are public, every write
// requires a session.
type NoticesModule struct {
	Handler *handlers.NoticeHandler
}

func NewNoticesModule(h *handlers.NoticeHandler) *NoticesModule {
	return &NoticesModule{Handler: h}
}

func (m *NoticesModule) Register(rg *gin.RouterGroup) {
	rg.GET("/notices", m.Handler.ListRecent)
	rg.GET("/notices/all", m.Handler.ListAll)
	rg.GET("/notices/categories/:categoryId", m.Handler.ListByCategory)
	rg.GET("/notices/:id", m.Handler.GetByID)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetSessions()))
	{
		auth.POST("/notices", m.Handler.Create)
		auth.PUT("/notices/:id", m.Handler.Update)
		auth.DELETE("/notices/:id", m.Handler.Delete)
	}
}
